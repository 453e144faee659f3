package apiserver

import (
	"github.com/gin-gonic/gin"
	"github.com/maxiaolu1981/cretem/nexuscore/errors"

	"github.com/maxiaolu1981/cretem/shop-apiserver/internal/apiserver/cache"
	addressv1 "github.com/maxiaolu1981/cretem/shop-apiserver/internal/apiserver/control/v1/address"
	orderv1 "github.com/maxiaolu1981/cretem/shop-apiserver/internal/apiserver/control/v1/order"
	productv1 "github.com/maxiaolu1981/cretem/shop-apiserver/internal/apiserver/control/v1/product"
	userv1 "github.com/maxiaolu1981/cretem/shop-apiserver/internal/apiserver/control/v1/user"
	srvv1 "github.com/maxiaolu1981/cretem/shop-apiserver/internal/apiserver/service/v1"
	"github.com/maxiaolu1981/cretem/shop-apiserver/internal/apiserver/store"
	"github.com/maxiaolu1981/cretem/shop-apiserver/internal/pkg/code"
	"github.com/maxiaolu1981/cretem/shop-apiserver/internal/pkg/core"
	"github.com/maxiaolu1981/cretem/shop-apiserver/internal/pkg/middleware"
)

func initRouter(s *apiServer) {
	installController(s)
}

func installController(s *apiServer) *gin.Engine {
	engine := s.genericAPIServer.Engine

	engine.NoRoute(func(c *gin.Context) {
		core.WriteResponse(c, errors.WithCode(code.ErrPageNotFound, "页面不存在"), nil)
	})

	// 仓储工厂在 createAPIServer 里通过 store.SetClient 注入
	srv := srvv1.NewService(store.Client(), cache.NewUserCache(s.redisClient), s.producer)

	runOpts := s.cfg.GenericServerRunOptions
	timeout := runOpts.CtxTimeout

	v1 := engine.Group("/v1")
	if runOpts.EnableRateLimiter {
		// 只拦截写方法，读请求不过限流器
		v1.Use(middleware.Limit(runOpts.WriteRateLimit))
	}

	userController := userv1.NewUserController(srv, timeout)
	addressController := addressv1.NewAddressController(srv, timeout)
	productController := productv1.NewProductController(srv, timeout)
	orderController := orderv1.NewOrderController(srv, timeout)

	users := v1.Group("/users")
	{
		users.POST("", userController.Create)
		users.GET("", userController.List)
		users.GET(":id", userController.Get)
		users.PATCH(":id", userController.Update)
		users.DELETE(":id", userController.Delete)

		addresses := users.Group(":id/addresses")
		{
			addresses.POST("", addressController.Create)
			addresses.GET("", addressController.List)
			addresses.GET(":addressID", addressController.Get)
			addresses.PATCH(":addressID", addressController.Update)
			addresses.DELETE(":addressID", addressController.Delete)
		}
	}

	products := v1.Group("/products")
	{
		products.POST("", productController.Create)
		products.GET("", productController.List)
		products.GET(":id", productController.Get)
		products.PATCH(":id", productController.Update)
		products.DELETE(":id", productController.Delete)
	}

	orders := v1.Group("/orders")
	{
		orders.POST("", orderController.Create)
		orders.GET("", orderController.List)
		orders.GET(":id", orderController.Get)
		orders.PATCH(":id", orderController.Update)
		orders.DELETE(":id", orderController.Delete)
	}

	return engine
}
