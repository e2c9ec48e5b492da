// Command mysqlstate shares time-based UUID generation state through MySQL.
//
// Every instance persists the last issued timestamp, the clock sequence and
// the node identity in a uuid_state row keyed by instance name. After a
// restart the generator picks the sequence back up instead of rerolling it,
// which is the stable store RFC 4122 section 4.2.1 asks time-based
// generators to keep.
package main

import (
	"database/sql"
	"encoding/hex"
	"flag"
	"os"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	_ "github.com/go-sql-driver/mysql"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/uuidkit/uuid"
)

// Config is the TOML configuration for the demo.
type Config struct {
	// DSN is the MySQL connection string.
	DSN string `toml:"dsn"`
	// Instance names this generator in the uuid_state table. Two processes
	// sharing an instance name would fight over one row, so give each its own.
	Instance string `toml:"instance"`
	// Workers and Count shape the generation load: Workers goroutines issue
	// Count UUIDs each.
	Workers int `toml:"workers"`
	Count   int `toml:"count"`
}

func defaultConfig() Config {
	host, err := os.Hostname()
	if err != nil {
		host = "local"
	}
	return Config{
		DSN:      "root:123456@tcp(127.0.0.1:3306)/test_db?parseTime=true",
		Instance: host,
		Workers:  10,
		Count:    500,
	}
}

// loadConfig reads the TOML file at path, or returns the defaults when path
// is empty.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, errors.Wrapf(err, "decode config %s", path)
		}
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if c.DSN == "" {
		return errors.New("dsn must not be empty")
	}
	if c.Instance == "" || len(c.Instance) > 64 {
		return errors.Errorf("instance must be 1-64 characters, got %q", c.Instance)
	}
	if c.Workers <= 0 || c.Count <= 0 {
		return errors.New("workers and count must be positive")
	}
	return nil
}

const createStateTable = `
CREATE TABLE IF NOT EXISTS uuid_state (
	instance   VARCHAR(64)       NOT NULL PRIMARY KEY,
	ticks      BIGINT UNSIGNED   NOT NULL,
	clock_seq  SMALLINT UNSIGNED NOT NULL,
	node       BINARY(6)         NOT NULL,
	updated_at TIMESTAMP         NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
)`

// sqlSaver persists uuid.State in MySQL, one row per instance. It satisfies
// uuid.Saver, so the generator calls Load once on first use and Save after
// every issued time-based UUID.
type sqlSaver struct {
	db       *sql.DB
	instance string
}

func newSQLSaver(dsn, instance string) (*sqlSaver, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "open mysql")
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	if _, err := db.Exec(createStateTable); err != nil {
		return nil, errors.Wrap(err, "create uuid_state table")
	}
	return &sqlSaver{db: db, instance: instance}, nil
}

// Load reads this instance's row. A missing row is an error, which the
// generator treats as "no stable store yet" and seeds a fresh sequence.
func (s *sqlSaver) Load() (uuid.State, error) {
	var st uuid.State
	var node []byte
	err := s.db.QueryRow(
		"SELECT ticks, clock_seq, node FROM uuid_state WHERE instance = ?",
		s.instance,
	).Scan(&st.Ticks, &st.ClockSeq, &node)
	if err != nil {
		return st, errors.Wrapf(err, "load state for %q", s.instance)
	}
	copy(st.Node[:], node)
	return st, nil
}

// Save upserts this instance's row, creating it on the first write.
func (s *sqlSaver) Save(st uuid.State) error {
	_, err := s.db.Exec(
		`INSERT INTO uuid_state (instance, ticks, clock_seq, node)
		 VALUES (?, ?, ?, ?)
		 ON DUPLICATE KEY UPDATE
		   ticks = VALUES(ticks), clock_seq = VALUES(clock_seq), node = VALUES(node)`,
		s.instance, st.Ticks, st.ClockSeq, st.Node[:],
	)
	return errors.Wrapf(err, "save state for %q", s.instance)
}

func (s *sqlSaver) Close() error {
	return s.db.Close()
}

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	saver, err := newSQLSaver(cfg.DSN, cfg.Instance)
	if err != nil {
		logger.Fatal("stable store unavailable", zap.Error(err))
	}
	defer saver.Close()

	gen := uuid.NewGenerator(uuid.WithSaver(saver))

	logger.Info("generating",
		zap.String("instance", cfg.Instance),
		zap.Int("workers", cfg.Workers),
		zap.Int("count_per_worker", cfg.Count))

	start := time.Now()
	var wg sync.WaitGroup
	for i := 0; i < cfg.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < cfg.Count; j++ {
				if _, err := gen.NewV1(); err != nil {
					logger.Error("generate failed", zap.Error(err))
					return
				}
			}
		}()
	}
	wg.Wait()

	logger.Info("done",
		zap.Int("issued", cfg.Workers*cfg.Count),
		zap.Duration("elapsed", time.Since(start)))

	// Read the row back to show what survives the next restart.
	st, err := saver.Load()
	if err != nil {
		logger.Fatal("read back state", zap.Error(err))
	}
	logger.Info("persisted state",
		zap.Uint64("ticks", st.Ticks),
		zap.Uint16("clock_seq", st.ClockSeq),
		zap.String("node", hex.EncodeToString(st.Node[:])))
}
