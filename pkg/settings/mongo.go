package settings

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCollection is the collection settings documents live in.
const MongoCollection = "settings"

// MongoStore keeps a profile as one document whose _id is the profile name.
type MongoStore struct {
	client  *mongo.Client
	coll    *mongo.Collection
	profile string
}

// NewMongoStore connects to uri and pings the deployment.
func NewMongoStore(ctx context.Context, uri, database, profile string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return &MongoStore{
		client:  client,
		coll:    client.Database(database).Collection(MongoCollection),
		profile: profile,
	}, nil
}

func (s *MongoStore) Load(ctx context.Context) (Settings, error) {
	var st Settings
	err := s.coll.FindOne(ctx, bson.M{"_id": s.profile}).Decode(&st)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Settings{}, nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("load settings: %w", err)
	}
	return st, nil
}

// Save upserts the profile document with $set on the patch's set fields.
func (s *MongoStore) Save(ctx context.Context, patch Settings) error {
	set := setDocument(patch)
	if len(set) == 0 {
		return nil
	}
	_, err := s.coll.UpdateOne(ctx,
		bson.M{"_id": s.profile},
		bson.M{"$set": set},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

func (s *MongoStore) Reset(ctx context.Context) error {
	_, err := s.coll.DeleteOne(ctx, bson.M{"_id": s.profile})
	return err
}

func (s *MongoStore) Close() error {
	return s.client.Disconnect(context.Background())
}

// setDocument lists the fields of patch that are set, under their bson names.
func setDocument(patch Settings) bson.M {
	set := bson.M{}
	put := func(k, v string) {
		if v != "" {
			set[k] = v
		}
	}
	put("presetId", patch.PresetID)
	put("paletteId", patch.PaletteID)
	put("titleBar", patch.TitleBar)
	put("aspectRatio", patch.AspectRatio)
	put("frameStyle", patch.FrameStyle)
	if patch.AnimationsEnabled != nil {
		set["animationsEnabled"] = *patch.AnimationsEnabled
	}
	return set
}

var _ Store = (*MongoStore)(nil)
