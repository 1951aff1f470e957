package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	domain "github.com/clinica/appointments-api/internal/domain/appointment"
	"github.com/clinica/appointments-api/internal/httperr"
	"github.com/clinica/appointments-api/internal/models"
)

const (
	CollectionUsers        = "usuarios"
	CollectionCenters      = "centros"
	CollectionAppointments = "citas"
)

type AppointmentMongoRepository struct {
	col     *mongo.Collection
	centers *CenterMongoRepository
}

func NewAppointmentMongoRepository(db *mongo.Database) *AppointmentMongoRepository {
	return &AppointmentMongoRepository{
		col:     db.Collection(CollectionAppointments),
		centers: NewCenterMongoRepository(db),
	}
}

func (r *AppointmentMongoRepository) GetCenterByName(ctx context.Context, name string) (*models.Center, error) {
	return r.centers.GetCenterByName(ctx, name)
}

func (r *AppointmentMongoRepository) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	if _, err := r.col.InsertOne(ctx, ap); err != nil {
		if isUniqueViolation(err) {
			return httperr.ErrBusiness(httperr.CodeSlotTaken)
		}
		return fmt.Errorf("insert appointment: %w", err)
	}
	return nil
}

func (r *AppointmentMongoRepository) FindActiveBySlot(ctx context.Context, slot domain.Slot) (*models.Appointment, error) {
	return r.findOne(ctx, bson.M{
		"day":    slot.Day,
		"hour":   slot.Hour,
		"center": slot.Center,
		"cancel": models.Active,
	})
}

func (r *AppointmentMongoRepository) GetAppointmentByID(ctx context.Context, id string) (*models.Appointment, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *AppointmentMongoRepository) CancelAppointment(ctx context.Context, id string, at time.Time) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id, "cancel": models.Active},
		bson.M{"$set": bson.M{"cancel": models.Cancelled, "cancelled_at": at}},
	)
	if err != nil {
		return fmt.Errorf("cancel appointment: %w", err)
	}
	if res.MatchedCount == 0 {
		return httperr.ErrBusiness(httperr.CodeAppointmentNotFound)
	}
	return nil
}

func (r *AppointmentMongoRepository) ListActive(ctx context.Context, filter domain.ListFilter) ([]models.Appointment, error) {
	q := bson.M{"cancel": models.Active}
	if filter.Username != "" {
		q["username"] = filter.Username
	}
	if filter.Day != "" {
		q["day"] = filter.Day
	}

	cur, err := r.col.Find(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	defer cur.Close(ctx)

	apps := []models.Appointment{}
	if err := cur.All(ctx, &apps); err != nil {
		return nil, fmt.Errorf("decode appointments: %w", err)
	}
	return apps, nil
}

func (r *AppointmentMongoRepository) findOne(ctx context.Context, q bson.M) (*models.Appointment, error) {
	var ap models.Appointment
	if err := r.col.FindOne(ctx, q).Decode(&ap); err != nil {
		return nil, noDocuments(err, httperr.CodeAppointmentNotFound)
	}
	return &ap, nil
}

func noDocuments(err error, code string) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return httperr.ErrBusiness(code)
	}
	return fmt.Errorf("find: %w", err)
}

var _ domain.Repository = (*AppointmentMongoRepository)(nil)
