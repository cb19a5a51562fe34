package services

import (
	"github.com/cloudphoenix/phoenix-api/internal/config"
	"github.com/cloudphoenix/phoenix-api/internal/db"
	"github.com/cloudphoenix/phoenix-api/internal/services/asset"
	"github.com/cloudphoenix/phoenix-api/internal/services/user"
)

type Services struct {
	User  *user.UserService
	Asset *asset.AssetService
}

func NewServices(conf *config.Config) *Services {
	dbconn := db.NewConn(conf)

	return &Services{
		User:  user.NewUserService(user.NewUserRepo(dbconn)),
		Asset: asset.NewAssetService(asset.NewAssetRepo(dbconn)),
	}
}
