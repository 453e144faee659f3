package main

import (
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/maxiaolu1981/cretem/shop-apiserver/internal/apiserver"
	_ "github.com/maxiaolu1981/cretem/shop-apiserver/internal/pkg/code"
)

func main() {
	rand.Seed(time.Now().UTC().UnixNano())
	if len(os.Getenv("GOMAXPROCS")) == 0 {
		runtime.GOMAXPROCS(runtime.NumCPU())
	}

	apiserver.NewApp("shop-apiserver").Run()
}
