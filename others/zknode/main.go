// Command zknode leases a stable 48-bit node identity from ZooKeeper.
//
// Time-based UUIDs embed a node identifier, and two generators sharing one
// identifier can collide. Instead of trusting MAC addresses, each instance
// registers under /uuid_node/<service>/node-<port>: the first run draws a
// random identity (multicast bit set) and records it, later runs recover it
// from ZooKeeper or from a local cache file when ZooKeeper is unreachable.
// The registered timestamp also catches system clocks that moved backwards
// across a restart.
package main

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-zookeeper/zk"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/uuidkit/uuid"
)

const zkRoot = "/uuid_node"

// Config is the TOML configuration for the demo.
type Config struct {
	// Servers lists the ZooKeeper ensemble addresses.
	Servers []string `toml:"servers"`
	// Service and Port identify this instance; together they form the
	// registration path.
	Service string `toml:"service"`
	Port    int    `toml:"port"`
	// CacheDir holds the local fallback file used when ZooKeeper is down.
	CacheDir string `toml:"cache_dir"`
	// Count is how many UUIDs the demo issues.
	Count int `toml:"count"`
}

func defaultConfig() Config {
	return Config{
		Servers:  []string{"127.0.0.1:2181"},
		Service:  "order-service",
		Port:     8080,
		CacheDir: ".",
		Count:    10,
	}
}

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
	if len(c.Servers) == 0 {
		return errors.New("servers must not be empty")
	}
	if c.Service == "" || strings.Contains(c.Service, "/") {
		return errors.Errorf("service must be a non-empty name without '/', got %q", c.Service)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return errors.Errorf("port out of range: %d", c.Port)
	}
	if c.Count <= 0 {
		return errors.New("count must be positive")
	}
	return nil
}

// nodeInfo is the registration record kept in ZooKeeper and the cache file.
type nodeInfo struct {
	Node        string `json:"node"` // 12 hex digits
	LastMilli   int64  `json:"last_milli"`
	CreateMilli int64  `json:"create_milli"`
}

// registrar owns the ZooKeeper registration for one instance. It satisfies
// uuid.NodeProvider, so a generator can embed the leased identity directly.
type registrar struct {
	conn      *zk.Conn
	logger    *zap.Logger
	service   string
	port      int
	cachePath string

	nodeID [6]byte
}

func newRegistrar(cfg Config, logger *zap.Logger) (*registrar, error) {
	conn, _, err := zk.Connect(cfg.Servers, 5*time.Second)
	if err != nil {
		return nil, errors.Wrap(err, "connect zookeeper")
	}
	return &registrar{
		conn:      conn,
		logger:    logger,
		service:   cfg.Service,
		port:      cfg.Port,
		cachePath: filepath.Join(cfg.CacheDir, fmt.Sprintf(".uuid_node_%s_%d.json", cfg.Service, cfg.Port)),
	}, nil
}

func (r *registrar) nodeKey() string {
	return fmt.Sprintf("%s/%s/node-%d", zkRoot, r.service, r.port)
}

// register recovers this instance's identity from ZooKeeper or the local
// cache, or mints a fresh random one on first run, then writes the record
// back. Recovery refuses to proceed when the local clock sits before the
// record's last heartbeat.
func (r *registrar) register() error {
	if err := r.ensurePath(zkRoot + "/" + r.service); err != nil {
		return err
	}

	key := r.nodeKey()
	now := time.Now().UnixMilli()

	exists, _, err := r.conn.Exists(key)
	if err != nil {
		return errors.Wrapf(err, "check %s", key)
	}

	var info nodeInfo
	switch {
	case exists:
		data, _, err := r.conn.Get(key)
		if err != nil {
			return errors.Wrapf(err, "read %s", key)
		}
		if err := json.Unmarshal(data, &info); err != nil {
			return errors.Wrapf(err, "decode %s", key)
		}
		if now < info.LastMilli {
			return errors.Errorf("clock moved backwards: now %d < registered %d", now, info.LastMilli)
		}
		r.logger.Info("recovered identity from zookeeper", zap.String("node", info.Node))

	default:
		if cached, err := r.loadCache(); err == nil {
			if now < cached.LastMilli {
				return errors.Errorf("clock moved backwards: now %d < cached %d", now, cached.LastMilli)
			}
			info = cached
			r.logger.Info("recovered identity from local cache", zap.String("node", info.Node))
		} else {
			id, err := uuid.RandomNode(rand.Reader).NodeID()
			if err != nil {
				return errors.Wrap(err, "mint node identity")
			}
			info = nodeInfo{Node: hex.EncodeToString(id[:]), CreateMilli: now}
			r.logger.Info("minted fresh identity", zap.String("node", info.Node))
		}
	}

	node, err := hex.DecodeString(info.Node)
	if err != nil || len(node) != 6 {
		return errors.Errorf("corrupt node record %q", info.Node)
	}
	copy(r.nodeID[:], node)

	info.LastMilli = now
	data, err := json.Marshal(info)
	if err != nil {
		return errors.Wrap(err, "encode node record")
	}
	if exists {
		_, err = r.conn.Set(key, data, -1)
	} else {
		_, err = r.conn.Create(key, data, 0, zk.WorldACL(zk.PermAll))
	}
	if err != nil {
		return errors.Wrapf(err, "register %s", key)
	}

	r.saveCache(info)
	return nil
}

// NodeID returns the leased identity. register must have succeeded first.
func (r *registrar) NodeID() ([6]byte, error) {
	if r.nodeID == ([6]byte{}) {
		return r.nodeID, errors.New("not registered")
	}
	return r.nodeID, nil
}

// heartbeat refreshes the record's timestamp every few seconds so the next
// restart can detect clock regression. ZooKeeper hiccups are logged and
// skipped; the cache file still advances.
func (r *registrar) heartbeat() {
	ticker := time.NewTicker(3 * time.Second)
	defer ticker.Stop()

	key := r.nodeKey()
	for range ticker.C {
		now := time.Now().UnixMilli()
		info := nodeInfo{Node: hex.EncodeToString(r.nodeID[:]), LastMilli: now}

		data, err := json.Marshal(info)
		if err != nil {
			continue
		}
		if _, err := r.conn.Set(key, data, -1); err != nil {
			r.logger.Warn("heartbeat skipped", zap.Error(err))
		}
		r.saveCache(info)
	}
}

// ensurePath creates each segment of path, tolerating segments that already
// exist.
func (r *registrar) ensurePath(path string) error {
	segments := strings.Split(strings.TrimPrefix(path, "/"), "/")
	current := ""
	for _, seg := range segments {
		current += "/" + seg
		_, err := r.conn.Create(current, nil, 0, zk.WorldACL(zk.PermAll))
		if err != nil && !errors.Is(err, zk.ErrNodeExists) {
			return errors.Wrapf(err, "create %s", current)
		}
	}
	return nil
}

func (r *registrar) saveCache(info nodeInfo) {
	data, err := json.Marshal(info)
	if err != nil {
		return
	}
	if err := os.WriteFile(r.cachePath, data, 0o644); err != nil {
		r.logger.Warn("cache write failed", zap.Error(err))
	}
}

func (r *registrar) loadCache() (nodeInfo, error) {
	var info nodeInfo
	data, err := os.ReadFile(r.cachePath)
	if err != nil {
		return info, err
	}
	if err := json.Unmarshal(data, &info); err != nil {
		return info, err
	}
	return info, nil
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

	reg, err := newRegistrar(cfg, logger)
	if err != nil {
		logger.Fatal("zookeeper unavailable", zap.Error(err))
	}
	if err := reg.register(); err != nil {
		logger.Fatal("registration failed", zap.Error(err))
	}
	go reg.heartbeat()

	gen := uuid.NewGenerator(uuid.WithNode(reg))

	for i := 0; i < cfg.Count; i++ {
		id, err := gen.NewV6()
		if err != nil {
			logger.Fatal("generate failed", zap.Error(err))
		}
		node, err := id.Node()
		if err != nil {
			logger.Fatal("extract node", zap.Error(err))
		}
		logger.Info("issued",
			zap.String("uuid", id.String()),
			zap.String("node", hex.EncodeToString(node)))
	}
}
