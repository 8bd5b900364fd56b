package iomigrate

import (
	"context"
	"fmt"
	"time"

	"github.com/asecurityteam/iomigrate/pkg/handlerfactory"
	"github.com/asecurityteam/iomigrate/pkg/iohandler/badgerkv"
	"github.com/asecurityteam/iomigrate/pkg/iohandler/dfs"
	"github.com/asecurityteam/iomigrate/pkg/iohandler/filesystem"
	"github.com/asecurityteam/iomigrate/pkg/iohandler/memory"
	"github.com/asecurityteam/iomigrate/pkg/iohandler/redisstore"
	"github.com/asecurityteam/iomigrate/pkg/iohandler/s3store"
	"github.com/hashicorp/go-multierror"
)

// FilesystemConfig configures the local storage handlers. They are always
// registered.
type FilesystemConfig struct {
	Identifier string `description:"Identifier of the filesystem metadata and binarydata handlers."`
	Root       string `description:"Directory holding the files."`
	URLPrefix  string `description:"Prefix of the public URI of every file."`
}

// Name of the configuration root.
func (*FilesystemConfig) Name() string { return "filesystem" }

// MemoryConfig configures the in-process handlers.
type MemoryConfig struct {
	Identifier string `description:"Identifier of the in-memory handlers. Empty disables them."`
}

// Name of the configuration root.
func (*MemoryConfig) Name() string { return "memory" }

// DFSConfig configures the clustered handlers: a SQLite dfsfile table for
// metadata and a shared mount for binary data.
type DFSConfig struct {
	Identifier  string        `description:"Identifier of the DFS handlers."`
	Path        string        `description:"SQLite database file. Empty disables the DFS handlers."`
	BusyTimeout time.Duration `description:"How long a write waits on a locked database."`
	Root        string        `description:"Shared mount holding the binary files. Empty registers only the metadata handler."`
	URLPrefix   string        `description:"Prefix of the public URI of every file on the mount."`
}

// Name of the configuration root.
func (*DFSConfig) Name() string { return "dfs" }

// BadgerConfig configures the embedded key-value metadata handler.
type BadgerConfig struct {
	Identifier string `description:"Identifier of the Badger metadata handler."`
	Path       string `description:"Database directory. Empty disables the handler."`
}

// Name of the configuration root.
func (*BadgerConfig) Name() string { return "badger" }

// RedisConfig configures the Redis metadata handler.
type RedisConfig struct {
	Identifier string `description:"Identifier of the Redis metadata handler."`
	Addr       string `description:"Redis host:port. Empty disables the handler."`
	Password   string `description:"Redis password."`
	DB         int    `description:"Redis database number."`
	Prefix     string `description:"Prefix of every key written."`
}

// Name of the configuration root.
func (*RedisConfig) Name() string { return "redis" }

// S3Config configures the S3 binarydata handler.
type S3Config struct {
	Identifier   string `description:"Identifier of the S3 binarydata handler."`
	Bucket       string `description:"Bucket name. Empty disables the handler."`
	Region       string `description:"AWS region of the bucket."`
	Endpoint     string `description:"Custom endpoint for S3 compatible stores."`
	UsePathStyle bool   `description:"Use path style bucket addressing."`
	Prefix       string `description:"Key prefix of every object."`
	URLPrefix    string `description:"Prefix of the public URI of every file."`
}

// Name of the configuration root.
func (*S3Config) Name() string { return "s3" }

// IOConfig groups the configuration of every IO backend.
type IOConfig struct {
	Filesystem *FilesystemConfig
	Memory     *MemoryConfig
	DFS        *DFSConfig
	Badger     *BadgerConfig
	Redis      *RedisConfig
	S3         *S3Config
}

// Name of the configuration root.
func (*IOConfig) Name() string { return "io" }

// IOComponent builds the handler registry from an IOConfig.
type IOComponent struct{}

// Settings generates the default configuration.
func (*IOComponent) Settings() *IOConfig {
	return &IOConfig{
		Filesystem: &FilesystemConfig{
			Identifier: "default",
			Root:       "var/storage",
			URLPrefix:  "/var/storage",
		},
		Memory: &MemoryConfig{},
		DFS: &DFSConfig{
			Identifier:  "dfs",
			BusyTimeout: 5 * time.Second,
			URLPrefix:   "/var/storage",
		},
		Badger: &BadgerConfig{Identifier: "badger"},
		Redis:  &RedisConfig{Identifier: "redis", Prefix: redisstore.DefaultKeyPrefix},
		S3:     &S3Config{Identifier: "aws_s3"},
	}
}

// New opens every enabled backend and registers it. Backends opened before
// a failure are closed again.
func (*IOComponent) New(ctx context.Context, conf *IOConfig) (*handlerfactory.Registry, error) {
	reg := handlerfactory.NewRegistry()
	if err := register(ctx, reg, conf); err != nil {
		if errClose := reg.Close(); errClose != nil {
			err = multierror.Append(err, errClose)
		}
		return nil, err
	}
	return reg, nil
}

func register(ctx context.Context, reg *handlerfactory.Registry, conf *IOConfig) error {
	fs := conf.Filesystem
	reg.AddMetadata(fs.Identifier, filesystem.NewMetadata(fs.Root))
	reg.AddBinarydata(fs.Identifier, filesystem.NewBinarydata(fs.Root, fs.URLPrefix))

	if conf.Memory.Identifier != "" {
		reg.AddMetadata(conf.Memory.Identifier, memory.NewMetadata())
		reg.AddBinarydata(conf.Memory.Identifier, memory.NewBinarydata(""))
	}

	if conf.DFS.Path != "" {
		m, err := dfs.Open(ctx, dfs.Config{Path: conf.DFS.Path, BusyTimeout: conf.DFS.BusyTimeout})
		if err != nil {
			return fmt.Errorf("io handler %s: %w", conf.DFS.Identifier, err)
		}
		reg.AddMetadata(conf.DFS.Identifier, m)
		if conf.DFS.Root != "" {
			reg.AddBinarydata(conf.DFS.Identifier, filesystem.NewBinarydata(conf.DFS.Root, conf.DFS.URLPrefix))
		}
	}

	if conf.Badger.Path != "" {
		m, err := badgerkv.Open(conf.Badger.Path)
		if err != nil {
			return fmt.Errorf("io handler %s: %w", conf.Badger.Identifier, err)
		}
		reg.AddMetadata(conf.Badger.Identifier, m)
	}

	if conf.Redis.Addr != "" {
		m, err := redisstore.Open(ctx, redisstore.Config{
			Addr:      conf.Redis.Addr,
			Password:  conf.Redis.Password,
			DB:        conf.Redis.DB,
			KeyPrefix: conf.Redis.Prefix,
		})
		if err != nil {
			return fmt.Errorf("io handler %s: %w", conf.Redis.Identifier, err)
		}
		reg.AddMetadata(conf.Redis.Identifier, m)
	}

	if conf.S3.Bucket != "" {
		b, err := s3store.Open(ctx, s3store.Config{
			Bucket:       conf.S3.Bucket,
			Region:       conf.S3.Region,
			Endpoint:     conf.S3.Endpoint,
			UsePathStyle: conf.S3.UsePathStyle,
			KeyPrefix:    conf.S3.Prefix,
			URLPrefix:    conf.S3.URLPrefix,
		})
		if err != nil {
			return fmt.Errorf("io handler %s: %w", conf.S3.Identifier, err)
		}
		reg.AddBinarydata(conf.S3.Identifier, b)
	}
	return nil
}
