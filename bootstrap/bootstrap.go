package bootstrap

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/fulldump/box"

	"github.com/xether-ai/apidocs/api"
	"github.com/xether-ai/apidocs/cache"
	"github.com/xether-ai/apidocs/client"
	"github.com/xether-ai/apidocs/configuration"
	"github.com/xether-ai/apidocs/service"
)

var VERSION = "dev"

func Bootstrap(c *configuration.Configuration) (start, stop func()) {

	registry := client.NewRegistry(c.DefaultVersion,
		client.Backend{
			Version:       "v1",
			BaseUrl:       c.V1.BaseUrl,
			OpenApiPath:   c.V1.OpenApiPath,
			ChangelogPath: c.V1.ChangelogPath,
		},
		client.Backend{
			Version:       "v2",
			BaseUrl:       c.V2.BaseUrl,
			OpenApiPath:   c.V2.OpenApiPath,
			ChangelogPath: c.V2.ChangelogPath,
		},
	)

	s := service.NewService(registry, cache.NewMemoryCacher(), &http.Client{
		Timeout: 30 * time.Second,
	})

	b := api.Build(s, c.WebhookSecret, c.Statics, VERSION)
	if c.EnableCompression {
		b.WithInterceptors(api.Compression)
	}
	b.WithInterceptors(
		api.AccessLog(log.New(os.Stdout, "ACCESS: ", log.Lshortfile)),
		api.RecoverFromPanic,
		api.PrettyErrorInterceptor,
	)

	server := &http.Server{
		Addr:    c.HttpAddr,
		Handler: box.Box2Http(b),
	}

	ln, err := net.Listen("tcp", c.HttpAddr)
	if err != nil {
		log.Println("ERROR:", err.Error())
		os.Exit(-1)
	}
	log.Println("listening on", c.HttpAddr)

	stop = func() {
		server.Shutdown(context.Background())
	}

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGTERM, syscall.SIGINT)
	go func() {
		for {
			sig := <-signalChan
			fmt.Println("Signal received", sig.String())
			stop()
		}
	}()

	start = func() {

		wg := &sync.WaitGroup{}

		wg.Add(1)
		go func() {
			defer wg.Done()
			err := server.Serve(ln)
			if err != nil {
				fmt.Println(err.Error())
			}
		}()

		wg.Wait()
	}

	return
}
