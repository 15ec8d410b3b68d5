package db

import (
	"ViewTube.com/cmd/model"
	"ViewTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Init init DB
func Init() {
	var err error
	dsn := utils.GetMysqlDsn()
	DB, err = gorm.Open(mysql.Open(dsn),
		&gorm.Config{
			PrepareStmt:            true,
			SkipDefaultTransaction: true,
		},
	)
	if err != nil {
		panic(err)
	}

	if err = DB.AutoMigrate(
		&model.Comment{},
		&model.Reaction{},
		&model.Video{},
		&model.View{},
	); err != nil {
		hlog.Errorf("Failed to migrate interaction tables: %v", err)
		panic(err)
	}
}
