package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	itemHTTP "catalog/internal/item/delivery/http"
	itemUC "catalog/internal/item/usecase"
)

// setupItemDomain wires the item use case and handler onto the injected
// repository and registers /items.
func (srv HTTPServer) setupItemDomain(ctx context.Context, rg *gin.RouterGroup) error {
	uc := itemUC.New(srv.itemRepo, srv.l)
	h := itemHTTP.New(srv.l, uc)
	itemHTTP.RegisterRoutes(rg, h, srv.mw)

	srv.l.Infof(ctx, "Item domain registered at /items")
	return nil
}
