package httpserver

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	itemHTTP "items-service/internal/item/delivery/http"
	"items-service/internal/item/repository"
	postgreRepo "items-service/internal/item/repository/postgre"
	sqliteRepo "items-service/internal/item/repository/sqlite"
	itemUC "items-service/internal/item/usecase"
	"items-service/internal/middleware"
	"items-service/pkg/sqldb"
)

// setupItemDomain initializes the item domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(srv.db, srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(repo, srv.l)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(rg, h, mw)
func (srv HTTPServer) setupItemDomain(ctx context.Context, rg *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. Repository (backend per configured driver)
	var repo repository.Repository
	switch srv.dbDriver {
	case sqldb.DriverPostgres:
		if err := postgreRepo.EnsureSchema(ctx, srv.db); err != nil {
			return err
		}
		repo = postgreRepo.New(srv.db, srv.l)
	case sqldb.DriverSQLite:
		if err := sqliteRepo.EnsureSchema(ctx, srv.db); err != nil {
			return err
		}
		repo = sqliteRepo.New(srv.db, srv.l)
	default:
		return fmt.Errorf("httpserver: unsupported db driver %q", srv.dbDriver)
	}

	// 2. UseCase
	uc := itemUC.New(repo, srv.l)

	// 3. HTTP Handler
	h := itemHTTP.New(srv.l, uc)

	// 4. Routes: registers /items
	itemHTTP.RegisterRoutes(rg, h, mw)

	srv.l.Infof(ctx, "Item domain registered (driver: %s)", srv.dbDriver)
	return nil
}
