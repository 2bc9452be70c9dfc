package usecase

import (
	"encoding/json"
	"os"

	"github.com/phperfect/backend/internal/domain"
	"go.uber.org/zap"
)

// SaveRecommendations serializes a recommendation result to a JSON file at
// the given path. Failure is logged and reported as false, never raised.
func SaveRecommendations(result *domain.RecommendationResult, path string) bool {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		zap.L().Warn("failed to serialize recommendations", zap.Error(err))
		return false
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		zap.L().Warn("failed to save recommendations",
			zap.String("path", path), zap.Error(err))
		return false
	}

	zap.L().Info("recommendations saved", zap.String("path", path))
	return true
}
