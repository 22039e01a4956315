// Package testinternals starts the throwaway backing services used by integration tests.
package testinternals

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
)

const (
	PostgresUser     = "postgres"
	PostgresPassword = "postgres"
	PostgresDBName   = "fitplan"

	containerExpireSeconds = 300
)

type Containers struct {
	dockerPool *dockertest.Pool
	teardown   []func()
}

func NewContainers() (*Containers, error) {
	// uses a sensible default on windows (tcp/http) and linux/osx (socket)
	dockerPool, err := dockertest.NewPool("")
	if err != nil {
		return nil, fmt.Errorf("could not create new dockertest pool: %w", err)
	}
	dockerPool.MaxWait = time.Minute

	if err = dockerPool.Client.Ping(); err != nil {
		return nil, fmt.Errorf("could not ping dockertest pool: %w", err)
	}

	return &Containers{
		dockerPool: dockerPool,
		teardown:   make([]func(), 0),
	}, nil
}

// Postgres is a running postgres container. DB is a plain database/sql
// connection, for assertions that should not go through the code under test.
type Postgres struct {
	Host string
	Port string
	DB   *sql.DB
}

func (p *Postgres) CountRows(table string) (int, error) {
	var count int
	// table names come from test code only
	err := p.DB.QueryRow(fmt.Sprintf(`SELECT COUNT(*) FROM %s`, table)).Scan(&count)
	return count, err
}

func (c *Containers) StartPostgres() (*Postgres, error) {
	pgResource, err := c.dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16",
		Env: []string{
			"POSTGRES_USER=" + PostgresUser,
			"POSTGRES_PASSWORD=" + PostgresPassword,
			"POSTGRES_DB=" + PostgresDBName,
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{
			Name: "no",
		}
	})
	if err != nil {
		return nil, fmt.Errorf("dockerpool run postgres: %w", err)
	}
	c.teardown = append(c.teardown, func() {
		if err := c.dockerPool.Purge(pgResource); err != nil {
			log.Printf("purge postgres container: %s", err)
		}
	})
	if err := pgResource.Expire(containerExpireSeconds); err != nil {
		return nil, fmt.Errorf("set postgres container expiry: %w", err)
	}

	pg := &Postgres{
		Host: "localhost",
		Port: pgResource.GetPort("5432/tcp"),
	}
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		PostgresUser, PostgresPassword, pg.Host, pg.Port, PostgresDBName,
	)

	if err := c.dockerPool.Retry(func() error {
		db, err := sql.Open("postgres", dsn)
		if err != nil {
			return err
		}
		if err := db.Ping(); err != nil {
			_ = db.Close()
			return err
		}
		pg.DB = db
		return nil
	}); err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}
	c.teardown = append(c.teardown, func() {
		_ = pg.DB.Close()
	})

	log.Printf("postgres container ready on port %s", pg.Port)
	return pg, nil
}

// StartRedis runs a redis container and returns its mapped port.
func (c *Containers) StartRedis() (string, error) {
	redisResource, err := c.dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Tag:        "7.2",
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
	})
	if err != nil {
		return "", fmt.Errorf("run redis: %w", err)
	}
	c.teardown = append(c.teardown, func() {
		if err := c.dockerPool.Purge(redisResource); err != nil {
			log.Printf("purge redis container: %s", err)
		}
	})

	return redisResource.GetPort("6379/tcp"), nil
}

// Cleanup stops everything started, in reverse order.
func (c *Containers) Cleanup() {
	for i := len(c.teardown) - 1; i >= 0; i-- {
		c.teardown[i]()
	}
	c.teardown = nil
}
