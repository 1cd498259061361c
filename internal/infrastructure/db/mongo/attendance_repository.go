package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/palmbay-resort/portal-api/internal/core/domain"
)

const collectionAttendance = "attendance"

type AttendanceRepository struct {
	coll *mongo.Collection
}

func NewAttendanceRepository(db *mongo.Database) *AttendanceRepository {
	return &AttendanceRepository{coll: db.Collection(collectionAttendance)}
}

// FindOpen returns the staff member's record for the date whose clock-out is
// still unset.
func (r *AttendanceRepository) FindOpen(ctx context.Context, staffID, date string) (*domain.AttendanceRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{
		"staff_id":  staffID,
		"date":      date,
		"clock_out": bson.M{"$exists": false},
	}

	var record domain.AttendanceRecord
	if err := r.coll.FindOne(ctx, filter).Decode(&record); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAttendanceNotFound
		}
		return nil, fmt.Errorf("find attendance: %w", storeErr(err))
	}
	return &record, nil
}

func (r *AttendanceRepository) Insert(ctx context.Context, record *domain.AttendanceRecord) (*domain.AttendanceRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	created := *record
	created.ID = primitive.NewObjectID().Hex()

	if _, err := r.coll.InsertOne(ctx, created); err != nil {
		return nil, fmt.Errorf("insert attendance: %w", storeErr(err))
	}
	return &created, nil
}

func (r *AttendanceRepository) SetClockOut(ctx context.Context, id string, at time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateByID(ctx, id, bson.M{"$set": bson.M{"clock_out": at}})
	if err != nil {
		return fmt.Errorf("update attendance: %w", storeErr(err))
	}
	if res.MatchedCount == 0 {
		return domain.ErrAttendanceNotFound
	}
	return nil
}

func (r *AttendanceRepository) ListByDate(ctx context.Context, date string) ([]domain.AttendanceRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"date": date}, options.Find().SetSort(bson.D{{Key: "clock_in", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list attendance: %w", storeErr(err))
	}

	records := []domain.AttendanceRecord{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("list attendance: %w", storeErr(err))
	}
	return records, nil
}

// EnsureIndexes creates the attendance lookup index.
func (r *AttendanceRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "staff_id", Value: 1}, {Key: "date", Value: 1}}},
		{Keys: bson.D{{Key: "date", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
