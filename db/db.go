package db

import (
	"context"
	"errors"
	"time"

	"blog-backend/models"
	"blog-backend/utils"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Open connects to Postgres. Driver errors such as unique or foreign key
// violations are translated into gorm.ErrDuplicatedKey and
// gorm.ErrForeignKeyViolated.
func Open(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		return nil, errors.New("empty database URL")
	}

	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:                 utils.GetGormLogger(),
		TranslateError:         true,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	return conn, nil
}

func Migrate(conn *gorm.DB) error {
	return conn.AutoMigrate(
		&models.Post{},
		&models.Category{},
		&models.PostCategory{},
	)
}

func InitDB(dsn string) error {
	conn, err := Open(dsn)
	if err != nil {
		utils.LogError(err, "Error connecting to the database")
		return err
	}

	if err := Migrate(conn); err != nil {
		utils.LogError(err, "Error migrating database")
		return err
	}

	DB = conn
	utils.LogSuccess("Database connection successful")
	return nil
}

func Ping(ctx context.Context) error {
	if DB == nil {
		return errors.New("database not initialized")
	}
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func Close() error {
	if DB == nil {
		return nil
	}
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
