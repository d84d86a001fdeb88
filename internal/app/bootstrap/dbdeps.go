// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// DBDeps holds database/back-end dependencies for the app.
//
// The blog API runs on two stores: MySQL (via GORM) for identity,
// memberships, comments, likes, and article identifiers, and MongoDB
// for article content.
type DBDeps struct {
	SQL *gorm.DB

	MongoClient   *mongo.Client
	MongoDatabase *mongo.Database
}
