package initialize

import (
	. "eventaggregator/internal/models"

	logger "github.com/Bparsons0904/goLogger"
	"gorm.io/gorm"
)

type requiredIndex struct {
	model any
	name  string
}

// Insert-if-absent resolves conflicts against these unique indexes, so the
// API must not run without them.
var requiredIndexes = []requiredIndex{
	{model: &Favorite{}, name: "idx_favorites_user_artist"},
	{model: &Review{}, name: "idx_reviews_user_artist"},
}

func VerifyConstraints(db *gorm.DB, log logger.Logger) error {
	log = log.Function("VerifyConstraints")
	log.Info("Verifying relationship constraints")

	for _, index := range requiredIndexes {
		if !db.Migrator().HasIndex(index.model, index.name) {
			return log.Error("missing unique index", "index", index.name)
		}
		log.Debug("Index present", "index", index.name)
	}

	log.Info("Constraint verification complete")
	return nil
}
