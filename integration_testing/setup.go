package integration_testing

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/forgezone/internal"
	"github.com/2beens/forgezone/internal/config"

	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
)

const (
	serverPort = 9000
	serverHost = "localhost"
	testDBName = "forgezone"
)

var serverEndpoint = "http://" + net.JoinHostPort(serverHost, strconv.Itoa(serverPort))

type env struct {
	DB         *sql.DB
	dockerPool *dockertest.Pool
	server     *internal.Server
	teardown   []func()
}

func newEnv(ctx context.Context) (_ *env, err error) {
	e := &env{
		teardown: make([]func(), 0),
	}
	defer func() {
		if err != nil {
			e.cleanup()
		}
	}()

	// uses a sensible default on windows (tcp/http) and linux/osx (socket)
	e.dockerPool, err = dockertest.NewPool("")
	if err != nil {
		return nil, fmt.Errorf("could not create new dockertest pool: %w", err)
	}

	// uses pool to try to connect to Docker
	if err = e.dockerPool.Client.Ping(); err != nil {
		return nil, fmt.Errorf("could not ping dockertest pool: %w", err)
	}

	redisPort, err := e.redisSetup()
	if err != nil {
		return nil, fmt.Errorf("failed to setup redis: %w", err)
	}

	pgPort, err := e.postgresSetup()
	if err != nil {
		return nil, fmt.Errorf("failed to setup postgres: %w", err)
	}

	cfg := getTestConfig(redisPort, pgPort)
	e.server, err = internal.NewServer(
		ctx,
		internal.NewServerParams{
			Config:  cfg,
			Secrets: &config.Secrets{},
		},
	)
	if err != nil {
		return nil, fmt.Errorf("new server: %w", err)
	}

	e.server.Serve(cfg.Host, cfg.Port)

	if err := e.dockerPool.Retry(func() error {
		resp, err := http.Get(serverEndpoint + "/api/health")
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("health status: %d", resp.StatusCode)
		}
		return nil
	}); err != nil {
		return nil, fmt.Errorf("wait for server: %w", err)
	}

	return e, nil
}

func (e *env) cleanup() {
	if e.server != nil {
		e.server.GracefulShutdown()
	}
	if e.DB != nil {
		_ = e.DB.Close()
	}
	for _, teardown := range e.teardown {
		teardown()
	}
}

func getTestConfig(redisPort, postgresPort string) *config.Config {
	return &config.Config{
		Host:                       serverHost,
		Port:                       serverPort,
		Environment:                "test",
		StoreType:                  config.StoreTypePostgres,
		PostgresHost:               "localhost",
		PostgresPort:               postgresPort,
		PostgresDBName:             testDBName,
		PostgresUser:               "postgres",
		PostgresMigrate:            true,
		RedisHost:                  "localhost",
		RedisPort:                  redisPort,
		PrometheusMetricsHost:      "localhost",
		PrometheusMetricsPort:      "9091",
		AIProvider:                 config.AIProviderNone,
		AITimeout:                  config.Duration{Duration: time.Second},
		SuggestionsRateLimitPerMin: 100,
		LoginRateLimitPerMin:       100,
		LeaderboardCacheTTLSeconds: 30,
		LeaderboardCacheSizeMB:     1,
		SessionCleanupSchedule:     "@every 1h",
	}
}

func (e *env) redisSetup() (string, error) {
	redisResource, err := e.dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Tag:        "6.2",
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
	})
	if err != nil {
		return "", fmt.Errorf("run redis: %w", err)
	}

	e.teardown = append(e.teardown, func() {
		_ = redisResource.Close()
	})

	return redisResource.GetPort("6379/tcp"), nil
}

func (e *env) postgresSetup() (string, error) {
	pgResource, err := e.dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16",
		Env: []string{
			"POSTGRES_USER=postgres",
			"POSTGRES_DB=" + testDBName,
			"POSTGRES_HOST_AUTH_METHOD=trust",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{
			Name: "no",
		}
	})
	if err != nil {
		return "", fmt.Errorf("dockerpool run postgres: %w", err)
	}

	e.teardown = append(e.teardown, func() {
		_ = pgResource.Close()
	})

	pgPort := pgResource.GetPort("5432/tcp")
	dsn := fmt.Sprintf("postgres://postgres@localhost:%s/%s?sslmode=disable", pgPort, testDBName)
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return "", fmt.Errorf("open db conn: %w", err)
	}
	e.DB = db

	if err := e.dockerPool.Retry(db.Ping); err != nil {
		return "", fmt.Errorf("ping db: %w", err)
	}

	return pgPort, nil
}
