package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"time"

	"github.com/aidar/octofit-tracker/internal/domain"
	"github.com/aidar/octofit-tracker/internal/repository"
)

// SeedSummary reports collection sizes after seeding
type SeedSummary struct {
	Teams       int `json:"teams"`
	Users       int `json:"users"`
	Activities  int `json:"activities"`
	Leaderboard int `json:"leaderboard"`
	Workouts    int `json:"workouts"`
}

// Seeder replaces the contents of every collection with the demo data set
type Seeder struct {
	repos       repository.Repositories
	users       *UserService
	leaderboard *LeaderboardService
	rng         *rand.Rand
	now         func() time.Time
	logger      *slog.Logger
}

// SeederOption configures a Seeder
type SeederOption func(*Seeder)

// WithRand sets the random source used for generated activities
func WithRand(rng *rand.Rand) SeederOption {
	return func(s *Seeder) { s.rng = rng }
}

// WithClock sets the time source activity dates are computed from
func WithClock(now func() time.Time) SeederOption {
	return func(s *Seeder) { s.now = now }
}

// NewSeeder creates a new Seeder
func NewSeeder(
	repos repository.Repositories,
	users *UserService,
	leaderboard *LeaderboardService,
	logger *slog.Logger,
	opts ...SeederOption,
) *Seeder {
	s := &Seeder{
		repos:       repos,
		users:       users,
		leaderboard: leaderboard,
		rng:         rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		now:         time.Now,
		logger:      logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Seed clears all collections and writes teams, users, activities,
// the computed leaderboard and the workout catalogue.
func (s *Seeder) Seed(ctx context.Context) (*SeedSummary, error) {
	if err := s.clear(ctx); err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "Existing data cleared")

	users, err := s.seedTeamsAndUsers(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.seedActivities(ctx, users); err != nil {
		return nil, err
	}

	if _, err := s.leaderboard.Rebuild(ctx); err != nil {
		return nil, fmt.Errorf("rebuild leaderboard: %w", err)
	}

	for _, in := range seedWorkouts {
		workout := &domain.Workout{}
		applyWorkoutInput(workout, in)
		if err := s.repos.Workouts.Create(ctx, workout); err != nil {
			return nil, fmt.Errorf("create workout %q: %w", in.Name, err)
		}
		s.logger.DebugContext(ctx, "Created workout", "name", workout.Name)
	}

	summary, err := s.summary(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "Database population completed",
		"teams", summary.Teams,
		"users", summary.Users,
		"activities", summary.Activities,
		"leaderboard", summary.Leaderboard,
		"workouts", summary.Workouts,
	)
	return summary, nil
}

func (s *Seeder) clear(ctx context.Context) error {
	steps := []struct {
		name string
		fn   func(context.Context) error
	}{
		{"users", s.repos.Users.DeleteAll},
		{"teams", s.repos.Teams.DeleteAll},
		{"activities", s.repos.Activities.DeleteAll},
		{"leaderboard", s.repos.Leaderboard.DeleteAll},
		{"workouts", s.repos.Workouts.DeleteAll},
	}
	for _, step := range steps {
		if err := step.fn(ctx); err != nil {
			return fmt.Errorf("clear %s: %w", step.name, err)
		}
	}
	return nil
}

// seedTeamsAndUsers creates both teams with their heroes and records member ids on each team
func (s *Seeder) seedTeamsAndUsers(ctx context.Context) ([]*domain.User, error) {
	var users []*domain.User
	for _, st := range seedTeams {
		team := &domain.Team{Name: st.name, Description: st.description}
		if err := s.repos.Teams.Create(ctx, team); err != nil {
			return nil, fmt.Errorf("create team %q: %w", st.name, err)
		}

		members := make([]string, 0, len(st.heroes))
		for _, hero := range st.heroes {
			teamID := team.ID
			user, err := s.users.Create(ctx, domain.UserInput{
				Name:     hero.name,
				Email:    hero.email,
				Password: hero.password,
				TeamID:   &teamID,
			})
			if err != nil {
				return nil, fmt.Errorf("create user %q: %w", hero.name, err)
			}
			members = append(members, user.ID)
			users = append(users, user)
			s.logger.DebugContext(ctx, "Created user", "name", user.Name, "team", team.Name)
		}

		team.Members = members
		if err := s.repos.Teams.Update(ctx, team); err != nil {
			return nil, fmt.Errorf("update members of team %q: %w", st.name, err)
		}
	}
	return users, nil
}

func (s *Seeder) seedActivities(ctx context.Context, users []*domain.User) error {
	now := s.now().UTC()
	for _, user := range users {
		n := s.between(5, 10)
		for range n {
			activity := s.randomActivity(user, now)
			if err := s.repos.Activities.Create(ctx, activity); err != nil {
				return fmt.Errorf("create activity for %q: %w", user.Name, err)
			}
		}
	}
	return nil
}

func (s *Seeder) randomActivity(user *domain.User, now time.Time) *domain.Activity {
	daysAgo := s.between(1, 30)
	activityType := SeedActivityTypes[s.rng.IntN(len(SeedActivityTypes))]
	duration := s.between(20, 120)

	var distance *float64
	if domain.EnduranceActivity(activityType) {
		d := math.Round((2.0+s.rng.Float64()*13.0)*100) / 100
		distance = &d
	}
	calories := duration * s.between(5, 12)
	notes := fmt.Sprintf("%s session by %s", activityType, user.Name)

	return &domain.Activity{
		UserID:       user.ID,
		ActivityType: activityType,
		Duration:     duration,
		Distance:     distance,
		Calories:     calories,
		Date:         now.AddDate(0, 0, -daysAgo),
		Notes:        &notes,
	}
}

// between returns a random int in [lo, hi]
func (s *Seeder) between(lo, hi int) int {
	return lo + s.rng.IntN(hi-lo+1)
}

func (s *Seeder) summary(ctx context.Context) (*SeedSummary, error) {
	var (
		summary SeedSummary
		err     error
	)
	if summary.Teams, err = s.repos.Teams.Count(ctx); err != nil {
		return nil, fmt.Errorf("count teams: %w", err)
	}
	if summary.Users, err = s.repos.Users.Count(ctx); err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	if summary.Activities, err = s.repos.Activities.Count(ctx); err != nil {
		return nil, fmt.Errorf("count activities: %w", err)
	}
	if summary.Leaderboard, err = s.repos.Leaderboard.Count(ctx); err != nil {
		return nil, fmt.Errorf("count leaderboard: %w", err)
	}
	if summary.Workouts, err = s.repos.Workouts.Count(ctx); err != nil {
		return nil, fmt.Errorf("count workouts: %w", err)
	}
	return &summary, nil
}
