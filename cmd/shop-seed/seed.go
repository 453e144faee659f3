// shop-seed 向数据库灌入一套演示数据：三个商品、一个带地址的用户
// 和一笔 pending 订单，方便本地联调。
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/pflag"

	v1 "github.com/maxiaolu1981/cretem/shop-apiserver/api/shop/v1"
	"github.com/maxiaolu1981/cretem/shop-apiserver/internal/apiserver/cache"
	"github.com/maxiaolu1981/cretem/shop-apiserver/internal/apiserver/events"
	srvv1 "github.com/maxiaolu1981/cretem/shop-apiserver/internal/apiserver/service/v1"
	"github.com/maxiaolu1981/cretem/shop-apiserver/internal/apiserver/store/mysql"
	_ "github.com/maxiaolu1981/cretem/shop-apiserver/internal/pkg/code"
	genericoptions "github.com/maxiaolu1981/cretem/shop-apiserver/internal/pkg/options"
	"github.com/maxiaolu1981/cretem/shop-apiserver/pkg/log"
)

func main() {
	mysqlOpts := genericoptions.NewMySQLOptions()
	mysqlOpts.AddFlags(pflag.CommandLine)
	pflag.Parse()

	log.Init(log.NewOptions())
	defer log.Flush()

	if err := seed(mysqlOpts); err != nil {
		fmt.Fprintf(os.Stderr, "%v %v\n", color.RedString("Error:"), err)
		os.Exit(1)
	}
	fmt.Println(color.GreenString("演示数据写入完成"))
}

func seed(mysqlOpts *genericoptions.MySQLOptions) error {
	factory, err := mysql.GetMySQLFactoryOr(mysqlOpts)
	if err != nil {
		return err
	}
	defer factory.Close()

	srv := srvv1.NewService(factory, cache.NewUserCache(nil), events.NewNoopProducer())

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	user, err := srv.Users().Create(ctx, &v1.CreateUserRequest{
		Name:  "demo",
		Email: "demo@shop.example.com",
	})
	if err != nil {
		return err
	}

	address, err := srv.Addresses().Create(ctx, user.ID, &v1.CreateAddressRequest{
		Street:     "人民路 1 号",
		City:       "上海",
		PostalCode: "200001",
	})
	if err != nil {
		return err
	}

	lines := make([]v1.OrderLine, 0, 3)
	var total float64
	for _, spec := range []struct {
		name  string
		price float64
		stock int
	}{
		{"机械键盘", 399.0, 50},
		{"显示器支架", 129.0, 80},
		{"USB 扩展坞", 199.0, 120},
	} {
		product, err := srv.Products().Create(ctx, &v1.CreateProductRequest{
			Name:          spec.name,
			Price:         spec.price,
			StockQuantity: spec.stock,
		})
		if err != nil {
			return err
		}
		lines = append(lines, v1.OrderLine{ProductID: product.ID, Quantity: 1})
		total += spec.price
	}

	order, err := srv.Orders().Create(ctx, &v1.CreateOrderRequest{
		UserID:      user.ID,
		AddressID:   address.ID,
		TotalAmount: total,
		Lines:       lines,
	})
	if err != nil {
		return err
	}

	log.Infof("演示数据: user=%d address=%d order=%d", user.ID, address.ID, order.ID)
	return nil
}
