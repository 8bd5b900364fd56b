// Package redisstore implements a metadata handler on Redis. Every file is
// stored as a JSON string and its ID is indexed in a sorted set with a zero
// score so listing follows lexical order.
package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/asecurityteam/iomigrate/pkg/domain"
	"github.com/asecurityteam/iomigrate/pkg/iohandler"
	"github.com/redis/go-redis/v9"
)

// DefaultKeyPrefix namespaces every key written by the handler.
const DefaultKeyPrefix = "iomigrate:"

// Config holds the Redis connection settings.
type Config struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string
}

// Metadata is a domain.MetadataHandler backed by Redis.
type Metadata struct {
	client redis.UniversalClient
	prefix string
}

// Open connects to Redis and checks the connection.
func Open(ctx context.Context, conf Config) (*Metadata, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         conf.Addr,
		Password:     conf.Password,
		DB:           conf.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}
	return New(client, conf.KeyPrefix), nil
}

// New wraps an existing client. An empty prefix selects DefaultKeyPrefix.
func New(client redis.UniversalClient, prefix string) *Metadata {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return &Metadata{client: client, prefix: prefix}
}

// Close closes the client.
func (m *Metadata) Close() error { return m.client.Close() }

func (m *Metadata) fileKey(id string) string { return m.prefix + "file:" + id }
func (m *Metadata) indexKey() string         { return m.prefix + "index" }

// Create stores the record and indexes the ID.
func (m *Metadata) Create(ctx context.Context, file *domain.BinaryFileCreateStruct) (domain.BinaryFile, error) {
	id, err := iohandler.CleanID(file.ID)
	if err != nil {
		return domain.BinaryFile{}, err
	}
	rec := domain.BinaryFile{
		ID:       id,
		Size:     file.Size,
		MTime:    file.MTime.UTC(),
		MimeType: file.MimeType,
	}
	buf, err := json.Marshal(rec)
	if err != nil {
		return domain.BinaryFile{}, err
	}
	_, err = m.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, m.fileKey(id), buf, 0)
		pipe.ZAdd(ctx, m.indexKey(), redis.Z{Score: 0, Member: id})
		return nil
	})
	if err != nil {
		return domain.BinaryFile{}, err
	}
	return rec, nil
}

// Delete removes the record and its index entry.
func (m *Metadata) Delete(ctx context.Context, id string) error {
	id, err := iohandler.CleanID(id)
	if err != nil {
		return err
	}
	var del *redis.IntCmd
	_, err = m.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		del = pipe.Del(ctx, m.fileKey(id))
		pipe.ZRem(ctx, m.indexKey(), id)
		return nil
	})
	if err != nil {
		return err
	}
	if del.Val() == 0 {
		return domain.BinaryFileNotFoundError{ID: id}
	}
	return nil
}

// Load reads the record of the file.
func (m *Metadata) Load(ctx context.Context, id string) (domain.BinaryFile, error) {
	id, err := iohandler.CleanID(id)
	if err != nil {
		return domain.BinaryFile{}, err
	}
	val, err := m.client.Get(ctx, m.fileKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.BinaryFile{}, domain.BinaryFileNotFoundError{ID: id}
	}
	if err != nil {
		return domain.BinaryFile{}, err
	}
	var out domain.BinaryFile
	if err := json.Unmarshal(val, &out); err != nil {
		return domain.BinaryFile{}, fmt.Errorf("redis: corrupt record %s: %w", id, err)
	}
	return out, nil
}

// Exists reports whether a record is stored for the file.
func (m *Metadata) Exists(ctx context.Context, id string) (bool, error) {
	id, err := iohandler.CleanID(id)
	if err != nil {
		return false, err
	}
	n, err := m.client.Exists(ctx, m.fileKey(id)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// MimeType returns the stored MIME type of the file.
func (m *Metadata) MimeType(ctx context.Context, id string) (string, error) {
	f, err := m.Load(ctx, id)
	if err != nil {
		return "", err
	}
	return f.MimeType, nil
}

// DeleteDirectory removes every record below the path.
func (m *Metadata) DeleteDirectory(ctx context.Context, path string) error {
	prefix, err := iohandler.DirectoryPrefix(path)
	if err != nil {
		return err
	}
	lo, hi := "-", "+"
	if prefix != "" {
		lo, hi = "["+prefix, "("+prefix+"\xff"
	}
	ids, err := m.client.ZRangeByLex(ctx, m.indexKey(), &redis.ZRangeBy{Min: lo, Max: hi}).Result()
	if err != nil || len(ids) == 0 {
		return err
	}
	_, err = m.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		members := make([]interface{}, 0, len(ids))
		for _, id := range ids {
			pipe.Del(ctx, m.fileKey(id))
			members = append(members, id)
		}
		pipe.ZRem(ctx, m.indexKey(), members...)
		return nil
	})
	return err
}

// CountFiles returns the size of the index.
func (m *Metadata) CountFiles(ctx context.Context) (int, error) {
	n, err := m.client.ZCard(ctx, m.indexKey()).Result()
	return int(n), err
}

// LoadFileList returns a page of the IDs in lexical order.
func (m *Metadata) LoadFileList(ctx context.Context, limit int, offset int) ([]string, error) {
	if offset < 0 {
		offset = 0
	}
	stop := int64(-1)
	if limit > 0 {
		stop = int64(offset + limit - 1)
	}
	return m.client.ZRange(ctx, m.indexKey(), int64(offset), stop).Result()
}

var (
	_ domain.MetadataHandler = &Metadata{}
	_ domain.FileLister      = &Metadata{}
)
