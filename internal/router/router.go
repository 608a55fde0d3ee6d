package router

import (
	"time"

	"github.com/Bran258/land-roys-v4/internal/config"
	"github.com/Bran258/land-roys-v4/internal/handler"
	"github.com/Bran258/land-roys-v4/internal/infra"
	"github.com/Bran258/land-roys-v4/internal/middleware"
	"github.com/Bran258/land-roys-v4/internal/repository"
	"github.com/Bran258/land-roys-v4/internal/service"
	"github.com/Bran258/land-roys-v4/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, storageCB *infra.CircuitBreaker) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Infrastructure ───────────────────────────────────────────────────────
	storage := infra.NewStorageClient(cfg.StorageURL, cfg.StorageBucket, cfg.StorageServiceKey)
	dispatcher := worker.NewDispatcher(rdb)

	// ── Repositories ─────────────────────────────────────────────────────────
	categoriaRepo := repository.NewCategoriaRepository(db)
	motoRepo := repository.NewMotoRepository(db)
	repuestoRepo := repository.NewRepuestoRepository(db)
	solicitudRepo := repository.NewSolicitudRepository(db)
	ventaRepo := repository.NewVentaRepository(db)
	movimientoRepo := repository.NewMovimientoRepository(db)
	ofertaRepo := repository.NewOfertaRepository(db)
	sliderRepo := repository.NewSliderRepository(db)
	rankingRepo := repository.NewRankingRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	categoriaSvc := service.NewCategoriaService(categoriaRepo)
	motoSvc := service.NewMotoService(motoRepo, categoriaSvc)
	repuestoSvc := service.NewRepuestoService(repuestoRepo, categoriaRepo, categoriaSvc)
	inventarioSvc := service.NewInventarioService(motoRepo, repuestoRepo, movimientoRepo)
	solicitudSvc := service.NewSolicitudService(solicitudRepo, dispatcher)
	ventaSvc := service.NewVentaService(ventaRepo, solicitudRepo, motoRepo, inventarioSvc, dispatcher)
	ofertaSvc := service.NewOfertaService(ofertaRepo)
	sliderSvc := service.NewSliderService(sliderRepo)
	rankingSvc := service.NewRankingService(rankingRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	categoriasH := handler.NewCategoriasHandler(categoriaSvc)
	motosH := handler.NewMotosHandler(motoSvc)
	repuestosH := handler.NewRepuestosHandler(repuestoSvc)
	solicitudesH := handler.NewSolicitudesHandler(solicitudSvc)
	ventasH := handler.NewVentasHandler(ventaSvc)
	inventarioH := handler.NewInventarioHandler(inventarioSvc)
	ofertasH := handler.NewOfertasHandler(ofertaSvc)
	sliderH := handler.NewSliderHandler(sliderSvc)
	rankingH := handler.NewRankingHandler(rankingSvc)
	uploadsH := handler.NewUploadsHandler(storage, storageCB)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db, rdb))

	// Public storefront surface: catalog reads and the contact form.
	v1 := r.Group("/v1")
	{
		v1.GET("/motos", motosH.Listar)
		v1.GET("/motos/:id", motosH.Obtener)
		v1.GET("/repuestos", repuestosH.Listar)
		v1.GET("/repuestos/:id", repuestosH.Obtener)
		v1.GET("/categorias", categoriasH.Listar)
		v1.GET("/categorias/arbol", categoriasH.Arbol)
		v1.GET("/ofertas", ofertasH.Listar)
		v1.GET("/slider", sliderH.Listar)
		v1.GET("/ranking", rankingH.Listar)

		v1.POST("/solicitudes", middleware.ContactoRateLimiter(), solicitudesH.Crear)
	}

	// Back office surface. Auth lives at the edge proxy; these routes carry
	// the write operations.
	admin := r.Group("/v1/admin")
	{
		admin.POST("/categorias", categoriasH.Crear)
		admin.PUT("/categorias/:id", categoriasH.Actualizar)
		admin.DELETE("/categorias/:id", categoriasH.Eliminar)

		admin.POST("/motos", motosH.Crear)
		admin.PUT("/motos/:id", motosH.Actualizar)
		admin.DELETE("/motos/:id", motosH.Eliminar)

		admin.POST("/repuestos", repuestosH.Crear)
		admin.PUT("/repuestos/:id", repuestosH.Actualizar)
		admin.DELETE("/repuestos/:id", repuestosH.Eliminar)

		admin.GET("/solicitudes", solicitudesH.Listar)
		admin.GET("/solicitudes/:id", solicitudesH.Obtener)
		admin.PUT("/solicitudes/:id", solicitudesH.Actualizar)
		admin.POST("/solicitudes/:id/perdida", solicitudesH.MarcarPerdida)
		admin.POST("/solicitudes/:id/convertir", ventasH.ConvertirSolicitud)

		admin.GET("/ventas", ventasH.Listar)
		admin.GET("/ventas/:id", ventasH.Obtener)

		admin.POST("/inventario/ajustar", inventarioH.AjustarStock)
		admin.GET("/inventario/movimientos", inventarioH.ListarMovimientos)

		admin.POST("/ofertas", ofertasH.Crear)
		admin.PUT("/ofertas/:id", ofertasH.Actualizar)
		admin.DELETE("/ofertas/:id", ofertasH.Eliminar)

		admin.POST("/slider", sliderH.Crear)
		admin.PUT("/slider/:id", sliderH.Actualizar)
		admin.POST("/slider/reordenar", sliderH.Reordenar)
		admin.DELETE("/slider/:id", sliderH.Eliminar)

		admin.GET("/ranking", rankingH.ListarAdmin)
		admin.PUT("/ranking", rankingH.Guardar)
		admin.DELETE("/ranking/:id", rankingH.Eliminar)

		admin.POST("/uploads", uploadsH.Subir)
	}

	return r
}
