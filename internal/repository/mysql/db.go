package mysql

import (
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"comunidade/internal/model"
)

// InitDB opens the MySQL pool. TranslateError is on so unique-index
// violations surface as gorm.ErrDuplicatedKey instead of driver errors.
func InitDB(dsn string, connLimit int) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(connLimit)
	sqlDB.SetMaxIdleConns(connLimit)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.MuralItem{},
		&model.CommunityPost{},
		&model.CommunityPostLike{},
		&model.CommunityComment{},
	)
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
