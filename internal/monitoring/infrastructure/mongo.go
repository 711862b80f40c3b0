package infrastructure

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"checkhub/internal/monitoring/domain"
)

var _ domain.Repository = (*MongoRepository)(nil)

const (
	teamsCollection    = "teams"
	monitorsCollection = "monitors"
	checksCollection   = "checks"
)

type teamDocument struct {
	ID   string `bson:"_id"`
	Name string `bson:"name"`
}

type monitorDocument struct {
	ID            string     `bson:"_id"`
	TeamID        string     `bson:"teamId"`
	Name          string     `bson:"name"`
	Status        *bool      `bson:"status,omitempty"`
	LastCheckedAt *time.Time `bson:"lastCheckedAt,omitempty"`
}

type checkDocument struct {
	ID           string    `bson:"_id"`
	MonitorID    string    `bson:"monitorId"`
	Status       bool      `bson:"status"`
	ResponseTime float64   `bson:"responseTime"`
	StatusCode   int       `bson:"statusCode"`
	Message      string    `bson:"message"`
	CreatedAt    time.Time `bson:"createdAt"`
}

// MongoRepository implements the monitoring repository interfaces on MongoDB
type MongoRepository struct {
	client *mongo.Client
	db     *mongo.Database

	now   func() time.Time
	newID func() string
}

// NewMongoRepository uses the named database of an already connected client
func NewMongoRepository(client *mongo.Client, database string) *MongoRepository {
	return &MongoRepository{
		client: client,
		db:     client.Database(database),
		// BSON dates carry millisecond precision
		now:   func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
		newID: uuid.NewString,
	}
}

// EnsureIndexes creates the indexes the check queries rely on
func (r *MongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.db.Collection(checksCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "monitorId", Value: 1}, {Key: "createdAt", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("create checks index: %w", err)
	}

	_, err = r.db.Collection(monitorsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "teamId", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("create monitors index: %w", err)
	}
	return nil
}

func (r *MongoRepository) UpsertTeam(ctx context.Context, team domain.Team) error {
	_, err := r.db.Collection(teamsCollection).UpdateOne(ctx,
		bson.D{{Key: "_id", Value: team.ID}},
		bson.D{{Key: "$set", Value: bson.D{{Key: "name", Value: team.Name}}}},
		options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("upsert team %s: %w", team.ID, err)
	}
	return nil
}

func (r *MongoRepository) UpsertMonitor(ctx context.Context, monitor domain.Monitor) error {
	err := r.db.Collection(teamsCollection).FindOne(ctx, bson.D{{Key: "_id", Value: monitor.TeamID}}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.ErrTeamNotFound
	}
	if err != nil {
		return fmt.Errorf("lookup team %s: %w", monitor.TeamID, err)
	}

	_, err = r.db.Collection(monitorsCollection).UpdateOne(ctx,
		bson.D{{Key: "_id", Value: monitor.ID}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "teamId", Value: monitor.TeamID},
			{Key: "name", Value: monitor.Name},
		}}},
		options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("upsert monitor %s: %w", monitor.ID, err)
	}
	return nil
}

func (r *MongoRepository) ListMonitors(ctx context.Context) ([]domain.Monitor, error) {
	cursor, err := r.db.Collection(monitorsCollection).Find(ctx, bson.D{},
		options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list monitors: %w", err)
	}

	var docs []monitorDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode monitors: %w", err)
	}

	result := make([]domain.Monitor, len(docs))
	for i, d := range docs {
		result[i] = domain.Monitor{
			ID:            d.ID,
			TeamID:        d.TeamID,
			Name:          d.Name,
			Status:        d.Status,
			LastCheckedAt: d.LastCheckedAt,
		}
	}
	return result, nil
}

func (r *MongoRepository) CreateCheck(ctx context.Context, monitorID string, result domain.CheckResult) (domain.Check, error) {
	monitors := r.db.Collection(monitorsCollection)

	err := monitors.FindOne(ctx, bson.D{{Key: "_id", Value: monitorID}}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.Check{}, domain.ErrMonitorNotFound
	}
	if err != nil {
		return domain.Check{}, fmt.Errorf("lookup monitor %s: %w", monitorID, err)
	}

	check := domain.NewCheck(r.newID(), monitorID, result, r.now())
	_, err = r.db.Collection(checksCollection).InsertOne(ctx, toCheckDocument(check))
	if err != nil {
		return domain.Check{}, fmt.Errorf("insert check: %w", err)
	}

	_, err = monitors.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: monitorID}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "status", Value: check.Status},
			{Key: "lastCheckedAt", Value: check.CreatedAt},
		}}})
	if err != nil {
		return domain.Check{}, fmt.Errorf("update monitor status: %w", err)
	}

	return check, nil
}

func (r *MongoRepository) GetChecks(ctx context.Context, filters domain.CheckFilters) ([]domain.Check, error) {
	filter := checkFilter(filters, bson.E{Key: "monitorId", Value: filters.MonitorID})
	return r.findChecks(ctx, filter, filters)
}

func (r *MongoRepository) GetChecksCount(ctx context.Context, filters domain.CheckFilters) (int64, error) {
	filter := checkFilter(filters, bson.E{Key: "monitorId", Value: filters.MonitorID})
	count, err := r.db.Collection(checksCollection).CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("count checks: %w", err)
	}
	return count, nil
}

func (r *MongoRepository) GetTeamChecks(ctx context.Context, filters domain.CheckFilters) ([]domain.Check, error) {
	cursor, err := r.db.Collection(monitorsCollection).Find(ctx,
		bson.D{{Key: "teamId", Value: filters.TeamID}},
		options.Find().SetProjection(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find team monitors: %w", err)
	}

	var docs []monitorDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode team monitors: %w", err)
	}
	if len(docs) == 0 {
		return []domain.Check{}, nil
	}

	ids := make([]string, len(docs))
	for i, d := range docs {
		ids[i] = d.ID
	}

	filter := checkFilter(filters, bson.E{Key: "monitorId", Value: bson.D{{Key: "$in", Value: ids}}})
	return r.findChecks(ctx, filter, filters)
}

// Close disconnects the underlying client
func (r *MongoRepository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}

func (r *MongoRepository) findChecks(ctx context.Context, filter bson.D, filters domain.CheckFilters) ([]domain.Check, error) {
	cursor, err := r.db.Collection(checksCollection).Find(ctx, filter, findOptions(filters))
	if err != nil {
		return nil, fmt.Errorf("find checks: %w", err)
	}

	var docs []checkDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode checks: %w", err)
	}

	result := make([]domain.Check, len(docs))
	for i, d := range docs {
		result[i] = domain.Check{
			ID:           d.ID,
			MonitorID:    d.MonitorID,
			Status:       d.Status,
			ResponseTime: d.ResponseTime,
			StatusCode:   d.StatusCode,
			Message:      d.Message,
			CreatedAt:    d.CreatedAt.UTC(),
		}
	}
	return result, nil
}

// checkFilter builds the query document for the status and date filters
// on top of the ownership condition.
func checkFilter(filters domain.CheckFilters, owner bson.E) bson.D {
	filter := bson.D{owner}

	switch filters.Status {
	case domain.StatusUp:
		filter = append(filter, bson.E{Key: "status", Value: true})
	case domain.StatusDown:
		filter = append(filter, bson.E{Key: "status", Value: false})
	case domain.StatusResolve:
		filter = append(filter,
			bson.E{Key: "status", Value: false},
			bson.E{Key: "statusCode", Value: domain.ResolveFailureStatusCode})
	}

	if filters.Since != nil {
		filter = append(filter, bson.E{Key: "createdAt", Value: bson.D{{Key: "$gte", Value: *filters.Since}}})
	}

	return filter
}

func findOptions(filters domain.CheckFilters) *options.FindOptions {
	direction := -1
	if filters.Order == domain.SortAsc {
		direction = 1
	}

	opts := options.Find().SetSort(bson.D{
		{Key: "createdAt", Value: direction},
		{Key: "_id", Value: direction},
	})
	if filters.Offset > 0 {
		opts.SetSkip(int64(filters.Offset))
	}
	if filters.Limit > 0 {
		opts.SetLimit(int64(filters.Limit))
	}
	return opts
}

func toCheckDocument(c domain.Check) checkDocument {
	return checkDocument{
		ID:           c.ID,
		MonitorID:    c.MonitorID,
		Status:       c.Status,
		ResponseTime: c.ResponseTime,
		StatusCode:   c.StatusCode,
		Message:      c.Message,
		CreatedAt:    c.CreatedAt,
	}
}
