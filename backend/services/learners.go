package services

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"

	"brainhub/backend/models"
	"brainhub/backend/repository"
)

// LearnerService owns the account/learner lifecycle: registration,
// credential checks, and profile assembly.
type LearnerService struct {
	store repository.Store
}

func NewLearnerService(store repository.Store) *LearnerService {
	return &LearnerService{store: store}
}

type RegisterInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LearnerProfile is the payload served by both login and /profile.
type LearnerProfile struct {
	Learner         LearnerInfo           `json:"learner"`
	Progress        []ProgressEntry       `json:"progress"`
	Recommendations []RecommendationEntry `json:"recommendations"`
}

type LearnerInfo struct {
	ID              uint                   `json:"id"`
	Username        string                 `json:"username"`
	Email           string                 `json:"email"`
	Niveau          string                 `json:"niveau"`
	Preferences     map[string]interface{} `json:"preferences"`
	DateInscription time.Time              `json:"date_inscription"`
}

type ProgressEntry struct {
	CourseTitle        string    `json:"course_title"`
	ProgressPercentage int       `json:"progress_percentage"`
	Status             string    `json:"status"`
	DateUpdated        time.Time `json:"date_updated"`
}

type RecommendationEntry struct {
	Type               string    `json:"type"`
	Content            string    `json:"content"`
	DateRecommendation time.Time `json:"date_recommendation"`
}

// Register creates the Account and its Learner in one transaction: a failure
// on the second insert rolls back the first, so an Account without a Learner
// is never visible. Niveau is always forced to the default and preferences
// start empty; RegisterInput carries no other fields, so whatever else the
// caller sent never reaches the rows.
func (s *LearnerService) Register(input RegisterInput) (uint, error) {
	if input.Username == "" || input.Email == "" || input.Password == "" {
		return 0, ErrMissingFields
	}

	exists, err := s.store.Accounts().EmailExists(input.Email)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, ErrEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}

	var learnerID uint
	err = s.store.Transaction(func(tx repository.Store) error {
		account := &models.Account{
			Username:     input.Username,
			Email:        input.Email,
			PasswordHash: string(hash),
		}
		if err := tx.Accounts().Create(account); err != nil {
			return err
		}

		learner := &models.Learner{
			AccountID:   account.ID,
			Niveau:      models.DefaultNiveau,
			Preferences: datatypes.JSONMap{},
		}
		if err := tx.Learners().Create(learner); err != nil {
			return err
		}
		learnerID = learner.ID
		return nil
	})
	if err != nil {
		// A concurrent registration can slip past the precheck; the unique
		// email column is the authority.
		if errors.Is(err, repository.ErrDuplicate) {
			return 0, ErrEmailExists
		}
		return 0, err
	}

	return learnerID, nil
}

// Authenticate verifies credentials and returns the full profile. Unknown
// email and wrong password are deliberately indistinguishable.
func (s *LearnerService) Authenticate(email, password string) (*LearnerProfile, error) {
	if email == "" || password == "" {
		return nil, ErrMissingFields
	}

	account, err := s.store.Accounts().FindByEmail(email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	learner, err := s.store.Learners().FindByAccountID(account.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrLearnerNotFound
		}
		return nil, err
	}

	return s.assembleProfile(learner)
}

// Profile returns the same payload as Authenticate for an already
// authenticated learner id.
func (s *LearnerService) Profile(learnerID uint) (*LearnerProfile, error) {
	learner, err := s.store.Learners().FindByID(learnerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrLearnerNotFound
		}
		return nil, err
	}
	return s.assembleProfile(learner)
}

func (s *LearnerService) assembleProfile(learner *models.Learner) (*LearnerProfile, error) {
	progressRows, err := s.store.Progress().ListByLearner(learner.ID)
	if err != nil {
		return nil, err
	}
	recRows, err := s.store.Recommendations().ListByLearner(learner.ID)
	if err != nil {
		return nil, err
	}

	progress := make([]ProgressEntry, 0, len(progressRows))
	for _, p := range progressRows {
		progress = append(progress, ProgressEntry{
			CourseTitle:        p.Course.Title,
			ProgressPercentage: p.ProgressPercentage,
			Status:             p.Status,
			DateUpdated:        p.UpdatedAt,
		})
	}

	recommendations := make([]RecommendationEntry, 0, len(recRows))
	for _, r := range recRows {
		recommendations = append(recommendations, RecommendationEntry{
			Type:               r.Type,
			Content:            r.Content,
			DateRecommendation: r.CreatedAt,
		})
	}

	preferences := map[string]interface{}(learner.Preferences)
	if preferences == nil {
		preferences = map[string]interface{}{}
	}

	return &LearnerProfile{
		Learner: LearnerInfo{
			ID:              learner.ID,
			Username:        learner.Account.Username,
			Email:           learner.Account.Email,
			Niveau:          learner.Niveau,
			Preferences:     preferences,
			DateInscription: learner.CreatedAt,
		},
		Progress:        progress,
		Recommendations: recommendations,
	}, nil
}
