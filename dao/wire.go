//go:build wireinject

package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewUsers,
	NewUserProfiles,
	NewPasswordResetTokens,
	NewPropertyDAO,
	NewPropertyCategoryDAO,
	NewPropertyTypeDAO,
	NewLocationDAO,
	NewPropertyImageDAO,
	NewFavoriteDAO,
	NewReviewDAO,
	NewReviewLikeDAO,
	NewNotificationDAO,
	NewFeedbackDAO,
	NewSearchHistoryDAO,
)
