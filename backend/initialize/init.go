package initialize

import (
	"fmt"
	"net/http"

	"hanviet-cards/backend/app/controllers"
	"hanviet-cards/backend/app/db"
	jwtutil "hanviet-cards/backend/app/jwt"
	"hanviet-cards/backend/app/middleware"
	"hanviet-cards/backend/app/models"
	"hanviet-cards/backend/app/repo"
	"hanviet-cards/backend/app/services"
	"hanviet-cards/backend/config"
	"hanviet-cards/backend/global"
	"hanviet-cards/backend/router"

	"gorm.io/gorm"
)

type App struct {
	Cfg     *config.Config
	DB      *gorm.DB
	Router  http.Handler
	Auth    *controllers.AuthController
	Cards   *controllers.CardController
	Admin   *controllers.AdminController
	Users   *services.UserService
	CardSvc *services.CardService
	Seeder  *services.SeedService
}

func Build(configPath string) (*App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	global.Config = cfg

	gdb, err := db.Connect(db.Config{Driver: cfg.DB.Driver, Host: cfg.DB.Host, Port: cfg.DB.Port, User: cfg.DB.User, Password: cfg.DB.Pass, DBName: cfg.DB.Name, Path: cfg.DB.Path})
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	global.Mdb = gdb

	if err := gdb.AutoMigrate(&models.User{}, &models.Card{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	// Services
	userRepo := repo.NewUserRepository(gdb)
	cardRepo := repo.NewCardRepository(gdb)
	userSvc := services.NewUserService(userRepo)
	cardSvc := services.NewCardService(cardRepo)
	seedSvc := services.NewSeedService(cardRepo, global.Logger)

	if cfg.Seed.Auto {
		seedSvc.AutoRun()
	}

	// Controllers
	signer := &jwtutil.Signer{Secret: []byte(cfg.JWT.Secret), Issuer: cfg.JWT.Issuer, ExpMin: cfg.JWT.ExpMin}
	httpCtrl := controllers.NewHTTPController()
	authCtrl := controllers.NewAuthController(userSvc, signer)
	cardCtrl := controllers.NewCardController(cardSvc)
	adminCtrl := controllers.NewAdminController(seedSvc)
	mw := &middleware.Auth{Signer: signer, Users: userSvc}

	h := router.NewRouter(httpCtrl, authCtrl, cardCtrl, adminCtrl, mw)
	h = middleware.CORS(cfg.CORS.Origin, h)
	h = middleware.Logging(h)

	return &App{Cfg: cfg, DB: gdb, Router: h, Auth: authCtrl, Cards: cardCtrl, Admin: adminCtrl, Users: userSvc, CardSvc: cardSvc, Seeder: seedSvc}, nil
}
