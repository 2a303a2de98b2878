package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/cangzhang/kaset/internal/auth"
	"github.com/cangzhang/kaset/internal/realtime"
	"github.com/cangzhang/kaset/internal/service"
	"github.com/cangzhang/kaset/internal/ytmusic"
)

func main() {
	_ = godotenv.Load()

	port := getenv("PORT", "8080")
	cookiesFile := getenv("COOKIES_FILE", "cookies.txt")

	cookies := auth.NewFileProvider(cookiesFile)
	if _, err := cookies.AllCookies(); err != nil {
		// Not fatal: the daemon watches the file and picks it up once the
		// browser export lands.
		log.Printf("kaset: cookies not loaded yet: %v", err)
	}

	var rdb *redis.Client
	if redisURL := getenv("REDIS_URL", ""); redisURL != "" {
		opt, err := redis.ParseURL(redisURL)
		if err != nil {
			log.Fatalf("kaset: invalid REDIS_URL: %v", err)
		}
		rdb = redis.NewClient(opt)
		defer rdb.Close()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := realtime.NewHub()
	go hub.Run(ctx)

	events := service.NewEvents(hub, rdb)

	client := ytmusic.New(ytmusic.Config{
		Cookies:  cookies,
		Session:  events,
		BaseURL:  getenv("YTM_BASE_URL", ""),
		APIKey:   getenv("YTM_API_KEY", ""),
		AuthUser: getenv("YTM_AUTH_USER", ""),
		Language: getenv("YTM_HL", ""),
		Region:   getenv("YTM_GL", ""),
	})

	// Fresh cookies mean cached responses may belong to another account.
	cookies.OnChange(func() {
		log.Printf("kaset: cookie file changed, dropping cached responses")
		client.InvalidateCache()
	})

	srv := service.NewServer(client, events)

	r := srv.Router(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Logger,
		middleware.Recoverer,
		middleware.Timeout(60*time.Second),
	)

	log.Printf("kaset listening on :%s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatalf("kaset: %v", err)
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
