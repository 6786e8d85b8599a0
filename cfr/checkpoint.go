// checkpoint.go
//
// Durable snapshots of a training run's information-set table, so a long
// run can be resumed after a crash or a deliberate restart. Ported from
// lox-pokerforbots/sdk/solver/checkpoint.go's checkpointFileVersion /
// checkpointSnapshot / atomic-temp-file-then-rename SaveCheckpoint, with
// an added DatastoreCheckpointStore (cloud.google.com/go/datastore)
// alternative backend alongside the file-based one, per spec.md §7's
// pluggable-persistence note.

package cfr

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"cloud.google.com/go/datastore"
)

const checkpointFileVersion = 1

// regretSnapshot is one information set's persisted accumulators.
type regretSnapshot struct {
	Key         string    `json:"key"`
	RegretSum   []float32 `json:"regret_sum"`
	StrategySum []float32 `json:"strategy_sum"`
}

// checkpointSnapshot is a full trainer checkpoint.
type checkpointSnapshot struct {
	Version   int              `json:"version"`
	Iteration int              `json:"iteration"`
	Seed      int64            `json:"seed"`
	Nodes     []regretSnapshot `json:"nodes"`
}

// snapshot captures the trainer's current state for checkpointing.
func (t *Trainer) snapshot() checkpointSnapshot {
	nodes := make([]regretSnapshot, 0, len(t.nodes))
	for key, n := range t.nodes {
		nodes = append(nodes, regretSnapshot{Key: key, RegretSum: n.RegretSum, StrategySum: n.StrategySum})
	}
	return checkpointSnapshot{
		Version:   checkpointFileVersion,
		Iteration: t.iter,
		Seed:      t.config.Seed,
		Nodes:     nodes,
	}
}

// restore rebuilds the trainer's node table and iteration counter from a
// checkpoint.
func (t *Trainer) restore(snap checkpointSnapshot) {
	t.iter = snap.Iteration
	t.nodes = make(map[string]*StateNode, len(snap.Nodes))
	for _, n := range snap.Nodes {
		node := NewStateNode(len(n.RegretSum))
		copy(node.RegretSum, n.RegretSum)
		copy(node.StrategySum, n.StrategySum)
		node.ComputeStrategy()
		t.nodes[n.Key] = node
	}
}

// CheckpointStore persists and loads Trainer snapshots.
type CheckpointStore interface {
	Save(ctx context.Context, snap checkpointSnapshot) error
	Load(ctx context.Context) (checkpointSnapshot, error)
}

// LoadTrainerFromCheckpoint constructs a Trainer for game and config,
// replacing its node table and iteration counter with the latest
// checkpoint from config.CheckpointStore.
func LoadTrainerFromCheckpoint(ctx context.Context, game Game, config TrainingConfig) (*Trainer, error) {
	t := NewTrainer(game, config)
	snap, err := config.CheckpointStore.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("cfr: loading checkpoint: %w", err)
	}
	t.restore(snap)
	return t, nil
}

// FileCheckpointStore persists checkpoints as JSON on the local
// filesystem, writing to a temp file and renaming over the destination
// so a crash mid-write never corrupts the last good checkpoint.
type FileCheckpointStore struct {
	Path string
}

func (s *FileCheckpointStore) Save(_ context.Context, snap checkpointSnapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("cfr: marshaling checkpoint: %w", err)
	}
	dir := filepath.Dir(s.Path)
	tmp, err := os.CreateTemp(dir, ".checkpoint-*.tmp")
	if err != nil {
		return fmt.Errorf("cfr: creating temp checkpoint file: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("cfr: writing temp checkpoint file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("cfr: closing temp checkpoint file: %w", err)
	}
	if err := os.Rename(tmpPath, s.Path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("cfr: renaming checkpoint file: %w", err)
	}
	return nil
}

func (s *FileCheckpointStore) Load(_ context.Context) (checkpointSnapshot, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return checkpointSnapshot{}, fmt.Errorf("cfr: reading checkpoint file: %w", err)
	}
	var snap checkpointSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return checkpointSnapshot{}, fmt.Errorf("cfr: decoding checkpoint file: %w", err)
	}
	return snap, nil
}

// datastoreCheckpointEntity is the Datastore-native representation of a
// checkpointSnapshot; Datastore properties can't hold arbitrary nested
// slices of structs, so node snapshots are flattened to a JSON blob
// property.
type datastoreCheckpointEntity struct {
	Version   int
	Iteration int
	Seed      int64
	NodesJSON []byte `datastore:",noindex"`
}

// DatastoreCheckpointStore persists checkpoints as a single Datastore
// entity, for deployments that run training in an environment without a
// durable local disk.
type DatastoreCheckpointStore struct {
	Client *datastore.Client
	Key    *datastore.Key
}

// NewDatastoreCheckpointStore returns a store that reads/writes a single
// named entity under kind "CFRCheckpoint".
func NewDatastoreCheckpointStore(client *datastore.Client, name string) *DatastoreCheckpointStore {
	return &DatastoreCheckpointStore{
		Client: client,
		Key:    datastore.NameKey("CFRCheckpoint", name, nil),
	}
}

func (s *DatastoreCheckpointStore) Save(ctx context.Context, snap checkpointSnapshot) error {
	nodesJSON, err := json.Marshal(snap.Nodes)
	if err != nil {
		return fmt.Errorf("cfr: marshaling checkpoint nodes: %w", err)
	}
	entity := &datastoreCheckpointEntity{
		Version:   snap.Version,
		Iteration: snap.Iteration,
		Seed:      snap.Seed,
		NodesJSON: nodesJSON,
	}
	if _, err := s.Client.Put(ctx, s.Key, entity); err != nil {
		return fmt.Errorf("cfr: writing datastore checkpoint: %w", err)
	}
	return nil
}

func (s *DatastoreCheckpointStore) Load(ctx context.Context) (checkpointSnapshot, error) {
	var entity datastoreCheckpointEntity
	if err := s.Client.Get(ctx, s.Key, &entity); err != nil {
		return checkpointSnapshot{}, fmt.Errorf("cfr: reading datastore checkpoint: %w", err)
	}
	var nodes []regretSnapshot
	if err := json.Unmarshal(entity.NodesJSON, &nodes); err != nil {
		return checkpointSnapshot{}, fmt.Errorf("cfr: decoding datastore checkpoint nodes: %w", err)
	}
	return checkpointSnapshot{
		Version:   entity.Version,
		Iteration: entity.Iteration,
		Seed:      entity.Seed,
		Nodes:     nodes,
	}, nil
}
