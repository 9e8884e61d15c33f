package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"hospital-booking-server/internal/models"
)

const (
	mysqlDuplicateEntry     = 1062
	postgresUniqueViolation = "23505"
)

// NewGorm returns repositories backed by db.
func NewGorm(db *gorm.DB) *Repositories {
	return &Repositories{
		Users:    &gormUsers{db: db},
		Patients: &gormPatients{db: db},
		Doctors:  &gormDoctors{db: db},
		Audit:    &gormAudit{db: db},
		Sessions: &gormSessions{db: db},
		Probe:    &gormProbe{db: db},
	}
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == mysqlDuplicateEntry {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == postgresUniqueViolation
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

type gormUsers struct{ db *gorm.DB }

func (r *gormUsers) Find(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

func (r *gormUsers) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

func (r *gormUsers) Insert(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if isDuplicateKey(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

type gormPatients struct{ db *gorm.DB }

func (r *gormPatients) Find(ctx context.Context, pid uint) (*models.Patient, error) {
	var patient models.Patient
	if err := r.db.WithContext(ctx).First(&patient, pid).Error; err != nil {
		return nil, notFound(err)
	}
	return &patient, nil
}

func (r *gormPatients) List(ctx context.Context, filter PatientFilter, offset, limit int) ([]models.Patient, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Patient{})
	if filter.Email != "" {
		query = query.Where("email = ?", filter.Email)
	}
	// Count and Find each start from the filtered statement.
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count patients: %w", err)
	}

	var patients []models.Patient
	if err := query.Order("pid asc").Offset(offset).Limit(limit).Find(&patients).Error; err != nil {
		return nil, 0, fmt.Errorf("list patients: %w", err)
	}
	return patients, total, nil
}

func (r *gormPatients) Insert(ctx context.Context, patient *models.Patient) error {
	if err := r.db.WithContext(ctx).Create(patient).Error; err != nil {
		return fmt.Errorf("insert patient: %w", err)
	}
	return nil
}

// Update overwrites every mutable column, including empty values.
func (r *gormPatients) Update(ctx context.Context, patient *models.Patient) error {
	err := r.db.WithContext(ctx).
		Model(&models.Patient{PID: patient.PID}).
		Select("email", "name", "gender", "slot", "disease", "time", "date", "dept", "number").
		Updates(patient).Error
	if err != nil {
		return fmt.Errorf("update patient %d: %w", patient.PID, err)
	}
	return nil
}

func (r *gormPatients) Delete(ctx context.Context, pid uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Patient{}, pid)
	if result.Error != nil {
		return fmt.Errorf("delete patient %d: %w", pid, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

type gormDoctors struct{ db *gorm.DB }

func (r *gormDoctors) Insert(ctx context.Context, doctor *models.Doctor) error {
	if err := r.db.WithContext(ctx).Create(doctor).Error; err != nil {
		return fmt.Errorf("insert doctor: %w", err)
	}
	return nil
}

func (r *gormDoctors) List(ctx context.Context) ([]models.Doctor, error) {
	doctors := []models.Doctor{}
	if err := r.db.WithContext(ctx).Order("did asc").Find(&doctors).Error; err != nil {
		return nil, fmt.Errorf("list doctors: %w", err)
	}
	return doctors, nil
}

func (r *gormDoctors) FindByDeptOrName(ctx context.Context, query string) (*models.Doctor, error) {
	var doctor models.Doctor
	err := r.db.WithContext(ctx).
		Where("dept = ? OR doctorname = ?", query, query).
		First(&doctor).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &doctor, nil
}

type gormAudit struct{ db *gorm.DB }

func (r *gormAudit) List(ctx context.Context) ([]models.Trigger, error) {
	logs := []models.Trigger{}
	if err := r.db.WithContext(ctx).Order("tid asc").Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("list audit entries: %w", err)
	}
	return logs, nil
}

type gormSessions struct{ db *gorm.DB }

func (r *gormSessions) Find(ctx context.Context, id string) (*models.Session, error) {
	var session models.Session
	if err := r.db.WithContext(ctx).First(&session, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &session, nil
}

func (r *gormSessions) Insert(ctx context.Context, session *models.Session) error {
	if err := r.db.WithContext(ctx).Create(session).Error; err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

func (r *gormSessions) Revoke(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).
		Model(&models.Session{}).
		Where("id = ?", id).
		Update("is_revoked", true)
	if result.Error != nil {
		return fmt.Errorf("revoke session: %w", result.Error)
	}
	return nil
}

type gormProbe struct{ db *gorm.DB }

func (r *gormProbe) Ping(ctx context.Context) error {
	var rows []models.Test
	if err := r.db.WithContext(ctx).Limit(1).Find(&rows).Error; err != nil {
		return fmt.Errorf("query test table: %w", err)
	}
	return nil
}
