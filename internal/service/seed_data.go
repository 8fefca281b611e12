package service

import "github.com/aidar/octofit-tracker/internal/domain"

type seedTeam struct {
	name        string
	description string
	heroes      []seedHero
}

type seedHero struct {
	name     string
	email    string
	password string
}

var seedTeams = []seedTeam{
	{
		name:        "Team Marvel",
		description: "Earth's Mightiest Heroes - A team of extraordinary individuals united to protect the world",
		heroes: []seedHero{
			{"Tony Stark", "ironman@marvel.com", "jarvis2024"},
			{"Steve Rogers", "captainamerica@marvel.com", "shield1940"},
			{"Natasha Romanoff", "blackwidow@marvel.com", "redroom2024"},
			{"Thor Odinson", "thor@marvel.com", "mjolnir123"},
			{"Bruce Banner", "hulk@marvel.com", "gamma2024"},
		},
	},
	{
		name:        "Team DC",
		description: "Justice League - The world's greatest superheroes working together to defend Earth",
		heroes: []seedHero{
			{"Clark Kent", "superman@dc.com", "krypton2024"},
			{"Bruce Wayne", "batman@dc.com", "gotham2024"},
			{"Diana Prince", "wonderwoman@dc.com", "themyscira2024"},
			{"Barry Allen", "flash@dc.com", "speedforce2024"},
			{"Arthur Curry", "aquaman@dc.com", "atlantis2024"},
		},
	},
}

// SeedActivityTypes are the activity types the seeder draws from.
var SeedActivityTypes = []string{"Running", "Cycling", "Swimming", "Weightlifting", "Yoga", "Boxing", "HIIT"}

var seedWorkouts = []domain.WorkoutInput{
	{
		Name:             "Iron Man Cardio Blast",
		Description:      "High-intensity cardio workout to build endurance like Tony Stark in his suit",
		Category:         "Cardio",
		Difficulty:       "Advanced",
		Duration:         45,
		CaloriesEstimate: 500,
		Instructions: []string{
			"Warm up for 5 minutes with light jogging",
			"Sprint intervals: 30 seconds sprint, 30 seconds rest (10 rounds)",
			"Burpees: 3 sets of 15 reps",
			"Mountain climbers: 3 sets of 30 seconds",
			"Cool down with 5 minutes of walking",
		},
	},
	{
		Name:             "Captain America Strength Training",
		Description:      "Build super-soldier strength with this compound movement workout",
		Category:         "Strength",
		Difficulty:       "Intermediate",
		Duration:         60,
		CaloriesEstimate: 400,
		Instructions: []string{
			"Bench press: 4 sets of 8-10 reps",
			"Deadlifts: 4 sets of 6-8 reps",
			"Pull-ups: 3 sets to failure",
			"Squats: 4 sets of 10 reps",
			"Shoulder press: 3 sets of 10 reps",
		},
	},
	{
		Name:             "Black Widow Flexibility Flow",
		Description:      "Enhance flexibility and mobility with this yoga-inspired routine",
		Category:         "Flexibility",
		Difficulty:       "Beginner",
		Duration:         30,
		CaloriesEstimate: 150,
		Instructions: []string{
			"Cat-cow stretches: 2 minutes",
			"Downward dog: Hold for 1 minute",
			"Warrior poses: 2 minutes each side",
			"Pigeon pose: 2 minutes each side",
			"Child's pose: 3 minutes",
		},
	},
	{
		Name:             "Superman Power Circuit",
		Description:      "Build total body power with explosive movements",
		Category:         "HIIT",
		Difficulty:       "Advanced",
		Duration:         40,
		CaloriesEstimate: 550,
		Instructions: []string{
			"Box jumps: 4 sets of 12 reps",
			"Medicine ball slams: 4 sets of 15 reps",
			"Battle ropes: 4 sets of 30 seconds",
			"Kettlebell swings: 4 sets of 20 reps",
			"Plank: Hold for 2 minutes",
		},
	},
	{
		Name:             "Wonder Woman Core Crusher",
		Description:      "Develop an unbreakable core with this targeted workout",
		Category:         "Core",
		Difficulty:       "Intermediate",
		Duration:         25,
		CaloriesEstimate: 200,
		Instructions: []string{
			"Plank variations: 3 sets of 1 minute each",
			"Russian twists: 3 sets of 30 reps",
			"Bicycle crunches: 3 sets of 25 reps",
			"Leg raises: 3 sets of 15 reps",
			"Dead bug: 3 sets of 20 reps",
		},
	},
	{
		Name:             "Flash Speed Training",
		Description:      "Develop lightning-fast speed and agility",
		Category:         "Speed",
		Difficulty:       "Intermediate",
		Duration:         35,
		CaloriesEstimate: 400,
		Instructions: []string{
			"Ladder drills: 10 minutes",
			"Sprint intervals: 8 x 100m with 60 seconds rest",
			"Cone drills: 5 minutes",
			"High knees: 3 sets of 30 seconds",
			"Cool down jog: 5 minutes",
		},
	},
}
