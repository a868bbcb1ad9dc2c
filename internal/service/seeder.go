package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"community_survey/internal/models"
	"community_survey/internal/repository"

	"github.com/brianvoe/gofakeit/v6"
)

// SeedUserPrefix marks demo profiles created by the seeder.
const SeedUserPrefix = "seed_"

const (
	seedSkipRate = 0.1
	minSeedAge   = 18
	maxSeedAge   = 80
)

var seedStreets = []string{
	"High St", "New St", "Broad St", "Station Rd", "Bristol Rd", "Hagley Rd",
	"Alcester Rd", "Pershore Rd", "Warwick Rd", "Coventry Rd", "Lichfield Rd",
	"Soho Rd", "Moseley Rd", "Ladbroke Grove", "Colmore Row", "Jewellery Quarter",
	"Digbeth", "Harborne High St", "Kings Heath High St", "Selly Oak Rd",
}

// Seeder fills the database with demo profiles and answers.
type Seeder struct {
	users     repository.UserRepo
	questions repository.QuestionRepo
	answers   repository.AnswerRepo
	faker     *gofakeit.Faker
	now       func() time.Time
}

// NewSeeder returns a seeder; a zero seed picks a random one.
func NewSeeder(repos *repository.Repository, seed int64) *Seeder {
	return &Seeder{
		users:     repos.Users,
		questions: repos.Questions,
		answers:   repos.Answers,
		faker:     gofakeit.New(seed),
		now:       time.Now,
	}
}

// SeedUsers upserts n demo profiles and returns them.
func (s *Seeder) SeedUsers(ctx context.Context, n int) ([]models.User, error) {
	out := make([]models.User, 0, n)
	for i := 0; i < n; i++ {
		u := s.fakeUser(i)
		if err := s.users.Upsert(ctx, u); err != nil {
			return out, fmt.Errorf("seed user %d: %w", i, err)
		}
		out = append(out, u)
	}
	return out, nil
}

func (s *Seeder) fakeUser(i int) models.User {
	first := s.faker.FirstName()
	last := s.faker.LastName()
	name := first + " " + last
	email := strings.ToLower(strings.ReplaceAll(fmt.Sprintf("%s.%s%d@example.co.uk", first, last, i), " ", ""))
	address := fmt.Sprintf("%d %s, Birmingham, B%d %c%d%c",
		s.faker.Number(1, 200),
		s.faker.RandomString(seedStreets),
		s.faker.Number(1, 9),
		rune('A'+s.faker.Number(0, 25)),
		s.faker.Number(0, 8),
		rune('A'+s.faker.Number(0, 25)),
	)
	dob := s.fakeDateOfBirth()

	return models.User{
		UserID:      fmt.Sprintf("%s%s_%s_%d", SeedUserPrefix, strings.ToLower(first), strings.ToLower(last), i),
		Name:        &name,
		Email:       &email,
		Address:     &address,
		DateOfBirth: &dob,
	}
}

func (s *Seeder) fakeDateOfBirth() string {
	now := s.now()
	age := s.faker.Number(minSeedAge, maxSeedAge)
	d := time.Date(now.Year()-age, time.Month(s.faker.Number(1, 12)), s.faker.Number(1, 28), 0, 0, 0, 0, time.UTC)
	return d.Format(time.DateOnly)
}

// SeedAnswers gives every seed profile an answer for roughly nine in ten
// questions and returns how many answers were written.
func (s *Seeder) SeedAnswers(ctx context.Context) (int, error) {
	userIDs, err := s.users.ListIDsWithPrefix(ctx, SeedUserPrefix)
	if err != nil {
		return 0, err
	}
	questionIDs, err := s.questions.ListIDs(ctx)
	if err != nil {
		return 0, err
	}

	written := 0
	for _, uid := range userIDs {
		for _, qid := range questionIDs {
			if s.faker.Float64() < seedSkipRate {
				continue
			}
			a := models.Answer{UserID: uid, QuestionID: qid, Answer: s.faker.Float64() < yesProbability(qid)}
			if err := s.answers.Upsert(ctx, a); err != nil {
				return written, fmt.Errorf("seed answer: %w", err)
			}
			written++
		}
	}
	return written, nil
}

// yesProbability skews a few demo questions so the area view has contrast.
func yesProbability(questionID int64) float64 {
	switch questionID {
	case 6, 7:
		return 0.75
	case 2, 4:
		return 0.35
	default:
		return 0.5
	}
}
