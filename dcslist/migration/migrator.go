package migration

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/uptrace/bun"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ellavondegurechaff/godcs/dcslist/database/models"
)

// Migrator imports the legacy Mongo directory into Postgres.
type Migrator struct {
	pgDB      *bun.DB
	mongoDB   *mongo.Database
	batchSize int

	sleepBetween time.Duration

	collNames map[string]string

	stats MigrationStats
}

func NewMigrator(pgDB *bun.DB, mongoDB *mongo.Database) *Migrator {
	return &Migrator{
		pgDB:      pgDB,
		mongoDB:   mongoDB,
		batchSize: 1000,
		collNames: map[string]string{
			"servers": "servers",
			"votes":   "server_votes",
		},
		stats: MigrationStats{
			Tables:    make(map[string]*TableStats),
			StartTime: time.Now(),
		},
	}
}

// Connect opens a Mongo client and returns the named database
func Connect(ctx context.Context, uri, database string) (*mongo.Client, *mongo.Database, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, nil, fmt.Errorf("mongo ping failed: %w", err)
	}
	return client, client.Database(database), nil
}

// SetBatchSize overrides the default batch size for inserts
func (m *Migrator) SetBatchSize(size int) {
	if size > 0 {
		m.batchSize = size
	}
}

// SetSleepBetween sets an optional sleep between batch inserts (milliseconds)
func (m *Migrator) SetSleepBetween(ms int) {
	if ms > 0 {
		m.sleepBetween = time.Duration(ms) * time.Millisecond
	}
}

// SetCollectionName overrides a source collection name
func (m *Migrator) SetCollectionName(table, name string) {
	m.collNames[table] = name
}

// Stats returns a copy of the accumulated run statistics
func (m *Migrator) Stats() MigrationStats {
	return m.stats
}

// MigrateAll imports servers first, then votes, so vote rows never
// reference a listing that has not landed yet.
func (m *Migrator) MigrateAll(ctx context.Context) error {
	if err := m.migrateServers(ctx); err != nil {
		return fmt.Errorf("server migration failed: %w", err)
	}
	if err := m.migrateVotes(ctx); err != nil {
		return fmt.Errorf("vote migration failed: %w", err)
	}

	m.stats.EndTime = time.Now()
	m.logSummary()
	return nil
}

func (m *Migrator) migrateServers(ctx context.Context) error {
	stats := &TableStats{}
	m.stats.Tables["servers"] = stats

	cursor, err := m.mongoDB.Collection(m.collNames["servers"]).Find(ctx, bson.D{})
	if err != nil {
		return fmt.Errorf("failed to query servers collection: %w", err)
	}
	defer cursor.Close(ctx)

	batch := make([]*models.Server, 0, m.batchSize)
	for cursor.Next(ctx) {
		var ms MongoServer
		if err := cursor.Decode(&ms); err != nil {
			slog.Warn("Skipping undecodable server document", slog.Any("error", err))
			stats.Errors++
			continue
		}
		stats.Read++

		if ms.OwnerID == "" || ms.Name == "" {
			stats.Skipped++
			continue
		}

		batch = append(batch, convertServer(ms))
		if len(batch) >= m.batchSize {
			if err := insertBatch(ctx, m.pgDB, batch, stats); err != nil {
				return err
			}
			batch = batch[:0]
			m.pause()
		}
	}
	if err := cursor.Err(); err != nil {
		return fmt.Errorf("server cursor failed: %w", err)
	}

	if len(batch) > 0 {
		if err := insertBatch(ctx, m.pgDB, batch, stats); err != nil {
			return err
		}
	}

	slog.Info("Server migration finished",
		slog.Int("read", stats.Read),
		slog.Int("inserted", stats.Inserted),
		slog.Int("skipped", stats.Skipped))
	return nil
}

func (m *Migrator) migrateVotes(ctx context.Context) error {
	stats := &TableStats{}
	m.stats.Tables["server_votes"] = stats

	cursor, err := m.mongoDB.Collection(m.collNames["votes"]).Find(ctx, bson.D{})
	if err != nil {
		return fmt.Errorf("failed to query votes collection: %w", err)
	}
	defer cursor.Close(ctx)

	batch := make([]*models.ServerVote, 0, m.batchSize)
	for cursor.Next(ctx) {
		var mv MongoVote
		if err := cursor.Decode(&mv); err != nil {
			slog.Warn("Skipping undecodable vote document", slog.Any("error", err))
			stats.Errors++
			continue
		}
		stats.Read++

		if mv.UserID == "" {
			stats.Skipped++
			continue
		}

		batch = append(batch, convertVote(mv))
		if len(batch) >= m.batchSize {
			if err := insertBatch(ctx, m.pgDB, batch, stats); err != nil {
				return err
			}
			batch = batch[:0]
			m.pause()
		}
	}
	if err := cursor.Err(); err != nil {
		return fmt.Errorf("vote cursor failed: %w", err)
	}

	if len(batch) > 0 {
		if err := insertBatch(ctx, m.pgDB, batch, stats); err != nil {
			return err
		}
	}

	slog.Info("Vote migration finished",
		slog.Int("read", stats.Read),
		slog.Int("inserted", stats.Inserted),
		slog.Int("skipped", stats.Skipped))
	return nil
}

func insertBatch[T any](ctx context.Context, db *bun.DB, batch []T, stats *TableStats) error {
	res, err := db.NewInsert().
		Model(&batch).
		On("CONFLICT DO NOTHING").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("batch insert failed: %w", err)
	}

	inserted, err := res.RowsAffected()
	if err != nil {
		inserted = int64(len(batch))
	}
	stats.Inserted += int(inserted)
	stats.Skipped += len(batch) - int(inserted)
	return nil
}

func (m *Migrator) pause() {
	if m.sleepBetween > 0 {
		time.Sleep(m.sleepBetween)
	}
}

func (m *Migrator) logSummary() {
	for table, stats := range m.stats.Tables {
		slog.Info("Migration table summary",
			slog.String("table", table),
			slog.Int("read", stats.Read),
			slog.Int("inserted", stats.Inserted),
			slog.Int("skipped", stats.Skipped),
			slog.Int("errors", stats.Errors))
	}
	slog.Info("Migration complete",
		slog.Duration("took", m.stats.EndTime.Sub(m.stats.StartTime)))
}
