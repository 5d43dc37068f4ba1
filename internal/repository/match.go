package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"infinite_ttt/internal/domain/match"
)

const matchesCollection = "matches"

type MatchRepository struct {
	log   *zap.SugaredLogger
	mongo *mongo.Database
}

func NewMatchRepository(log *zap.SugaredLogger, mongo *mongo.Database) *MatchRepository {
	return &MatchRepository{
		log:   log,
		mongo: mongo,
	}
}

// EnsureIndexes creates the player index used by stats lookups.
func (m *MatchRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := m.mongo.Collection(matchesCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "player", Value: 1}, {Key: "created_at", Value: -1}},
		Options: options.Index().SetName("player_created_at"),
	})
	return err
}

func (m *MatchRepository) CreateMatch(ctx context.Context, played match.Match) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := m.mongo.Collection(matchesCollection).InsertOne(ctx, played); err != nil {
		m.log.Errorf("failed to insert match %s: %v", played.ID, err)
		return fmt.Errorf("insert match: %w", err)
	}

	m.log.Infof("match %s stored for player %s (%s)", played.ID, played.Player, played.Result)
	return nil
}

type modeResultCount struct {
	ID struct {
		Mode   string `bson:"mode"`
		Result string `bson:"result"`
	} `bson:"_id"`
	Count int `bson:"count"`
}

// GetStatsByPlayer counts results per mode. Modes without games are absent.
func (m *MatchRepository) GetStatsByPlayer(ctx context.Context, player string) (map[string]match.StatsSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"player": player}}},
		{{Key: "$group", Value: bson.M{
			"_id":   bson.M{"mode": "$mode", "result": "$result"},
			"count": bson.M{"$sum": 1},
		}}},
	}

	cursor, err := m.mongo.Collection(matchesCollection).Aggregate(ctx, pipeline)
	if err != nil {
		m.log.Error(err)
		return nil, fmt.Errorf("aggregate stats: %w", err)
	}
	defer cursor.Close(ctx)

	summary := make(map[string]match.StatsSummary)
	for cursor.Next(ctx) {
		var row modeResultCount
		if err = cursor.Decode(&row); err != nil {
			return nil, fmt.Errorf("decode stats: %w", err)
		}
		s := summary[row.ID.Mode]
		switch row.ID.Result {
		case match.ResultWin:
			s.Wins = row.Count
		case match.ResultLoss:
			s.Losses = row.Count
		case match.ResultDraw:
			s.Draws = row.Count
		}
		summary[row.ID.Mode] = s
	}
	return summary, cursor.Err()
}

func countResult(result string) bson.M {
	return bson.M{"$sum": bson.M{"$cond": bson.A{bson.M{"$eq": bson.A{"$result", result}}, 1, 0}}}
}

func (m *MatchRepository) GetLeaderboard(ctx context.Context, limit int) ([]match.LeaderboardEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":    "$player",
			"wins":   countResult(match.ResultWin),
			"losses": countResult(match.ResultLoss),
			"draws":  countResult(match.ResultDraw),
			"games":  bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "wins", Value: -1}, {Key: "losses", Value: 1}, {Key: "_id", Value: 1}}}},
		{{Key: "$limit", Value: limit}},
	}

	cursor, err := m.mongo.Collection(matchesCollection).Aggregate(ctx, pipeline)
	if err != nil {
		m.log.Error(err)
		return nil, fmt.Errorf("aggregate leaderboard: %w", err)
	}
	defer cursor.Close(ctx)

	entries := make([]match.LeaderboardEntry, 0, limit)
	if err = cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("decode leaderboard: %w", err)
	}
	return entries, nil
}
