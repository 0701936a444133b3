package repository

import (
	"errors"

	"gorm.io/gorm"

	"brainhub/backend/models"
)

// GormStore implements Store on top of gorm. InitDB opens the connection
// with TranslateError enabled, which is what makes the ErrDuplicatedKey
// mapping below work across drivers.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Accounts() AccountRepository               { return accountRepo{s.db} }
func (s *GormStore) Learners() LearnerRepository               { return learnerRepo{s.db} }
func (s *GormStore) Courses() CourseRepository                 { return courseRepo{s.db} }
func (s *GormStore) Progress() ProgressRepository              { return progressRepo{s.db} }
func (s *GormStore) Recommendations() RecommendationRepository { return recommendationRepo{s.db} }

func (s *GormStore) Transaction(fn func(Store) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx})
	})
}

func translate(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	default:
		return err
	}
}

type accountRepo struct{ db *gorm.DB }

func (r accountRepo) Create(account *models.Account) error {
	if err := r.db.Create(account).Error; err != nil {
		return translate(err)
	}
	return nil
}

func (r accountRepo) FindByEmail(email string) (*models.Account, error) {
	var account models.Account
	if err := r.db.Where("email = ?", email).First(&account).Error; err != nil {
		return nil, translate(err)
	}
	return &account, nil
}

func (r accountRepo) EmailExists(email string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Account{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, translate(err)
	}
	return count > 0, nil
}

type learnerRepo struct{ db *gorm.DB }

func (r learnerRepo) Create(learner *models.Learner) error {
	if err := r.db.Create(learner).Error; err != nil {
		return translate(err)
	}
	return nil
}

func (r learnerRepo) FindByID(id uint) (*models.Learner, error) {
	var learner models.Learner
	if err := r.db.Preload("Account").First(&learner, id).Error; err != nil {
		return nil, translate(err)
	}
	return &learner, nil
}

func (r learnerRepo) FindByAccountID(accountID uint) (*models.Learner, error) {
	var learner models.Learner
	if err := r.db.Preload("Account").Where("account_id = ?", accountID).First(&learner).Error; err != nil {
		return nil, translate(err)
	}
	return &learner, nil
}

type courseRepo struct{ db *gorm.DB }

func (r courseRepo) FindByID(id uint) (*models.Course, error) {
	var course models.Course
	if err := r.db.First(&course, id).Error; err != nil {
		return nil, translate(err)
	}
	return &course, nil
}

func (r courseRepo) All() ([]models.Course, error) {
	var courses []models.Course
	if err := r.db.Find(&courses).Error; err != nil {
		return nil, translate(err)
	}
	return courses, nil
}

type progressRepo struct{ db *gorm.DB }

func (r progressRepo) Create(progress *models.Progress) error {
	if err := r.db.Create(progress).Error; err != nil {
		return translate(err)
	}
	return nil
}

func (r progressRepo) FindByPair(learnerID, courseID uint) (*models.Progress, error) {
	var progress models.Progress
	err := r.db.Where("learner_id = ? AND course_id = ?", learnerID, courseID).First(&progress).Error
	if err != nil {
		return nil, translate(err)
	}
	return &progress, nil
}

func (r progressRepo) ListByLearner(learnerID uint) ([]models.Progress, error) {
	var progress []models.Progress
	err := r.db.Preload("Course").Where("learner_id = ?", learnerID).Find(&progress).Error
	if err != nil {
		return nil, translate(err)
	}
	return progress, nil
}

func (r progressRepo) PairExists(learnerID, courseID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Progress{}).
		Where("learner_id = ? AND course_id = ?", learnerID, courseID).
		Count(&count).Error
	if err != nil {
		return false, translate(err)
	}
	return count > 0, nil
}

func (r progressRepo) Delete(progress *models.Progress) error {
	if err := r.db.Delete(progress).Error; err != nil {
		return translate(err)
	}
	return nil
}

type recommendationRepo struct{ db *gorm.DB }

func (r recommendationRepo) ListByLearner(learnerID uint) ([]models.Recommendation, error) {
	var recs []models.Recommendation
	if err := r.db.Where("learner_id = ?", learnerID).Find(&recs).Error; err != nil {
		return nil, translate(err)
	}
	return recs, nil
}
