package catalog

import (
	"context"
	"reflect"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// fakeExecutor records the descriptors the facade hands to the store and
// returns canned results. It verifies the facade's side of the contract; the
// store's side is covered by the mongodb adapter integration tests.
type fakeExecutor struct {
	lastCollection string
	lastFilter     interface{}
	lastOpts       *options.FindOptions
	lastUpdate     interface{}
	lastPipeline   mongo.Pipeline
	lastDocs       []interface{}
	lastIndexes    []mongo.IndexModel

	findResult    interface{}
	findErr       error
	findOneResult *Book
	findOneErr    error
	insertN       int64
	insertErr     error
	updateN       int64
	updateErr     error
	deleteN       int64
	deleteErr     error
	countN        int64
	countErr      error
	aggResult     interface{}
	aggErr        error
	indexNames    []string
	indexErr      error
	explainStats  ExplainStats
	explainErr    error

	// applyWindow makes Find honor skip/limit from the options against the
	// canned result slice, for pagination tests.
	applyWindow bool
}

// setSlice copies src into the pointed-to slice dst.
func setSlice(dst, src interface{}) {
	if src == nil {
		return
	}
	reflect.ValueOf(dst).Elem().Set(reflect.ValueOf(src))
}

func (f *fakeExecutor) Find(_ context.Context, collection string, filter interface{}, opts *options.FindOptions, results interface{}) error {
	f.lastCollection = collection
	f.lastFilter = filter
	f.lastOpts = opts
	if f.findErr != nil {
		return f.findErr
	}
	src := f.findResult
	if f.applyWindow && src != nil {
		src = windowed(src, opts)
	}
	setSlice(results, src)
	return nil
}

// windowed applies skip/limit from opts to a canned slice.
func windowed(src interface{}, opts *options.FindOptions) interface{} {
	v := reflect.ValueOf(src)
	lo, hi := 0, v.Len()
	if opts != nil && opts.Skip != nil {
		lo = int(*opts.Skip)
		if lo > hi {
			lo = hi
		}
	}
	if opts != nil && opts.Limit != nil {
		if end := lo + int(*opts.Limit); end < hi {
			hi = end
		}
	}
	return v.Slice(lo, hi).Interface()
}

func (f *fakeExecutor) FindOne(_ context.Context, collection string, filter interface{}, result interface{}) error {
	f.lastCollection = collection
	f.lastFilter = filter
	if f.findOneErr != nil {
		return f.findOneErr
	}
	if f.findOneResult == nil {
		return mongo.ErrNoDocuments
	}
	reflect.ValueOf(result).Elem().Set(reflect.ValueOf(*f.findOneResult))
	return nil
}

func (f *fakeExecutor) InsertMany(_ context.Context, collection string, docs []interface{}) (int64, error) {
	f.lastCollection = collection
	f.lastDocs = docs
	if f.insertErr != nil {
		return 0, f.insertErr
	}
	if f.insertN == 0 {
		return int64(len(docs)), nil
	}
	return f.insertN, nil
}

func (f *fakeExecutor) UpdateOne(_ context.Context, collection string, filter, update interface{}) (int64, error) {
	f.lastCollection = collection
	f.lastFilter = filter
	f.lastUpdate = update
	return f.updateN, f.updateErr
}

func (f *fakeExecutor) DeleteOne(_ context.Context, collection string, filter interface{}) (int64, error) {
	f.lastCollection = collection
	f.lastFilter = filter
	return f.deleteN, f.deleteErr
}

func (f *fakeExecutor) CountDocuments(_ context.Context, collection string, filter interface{}) (int64, error) {
	f.lastCollection = collection
	f.lastFilter = filter
	return f.countN, f.countErr
}

func (f *fakeExecutor) Aggregate(_ context.Context, collection string, pipeline mongo.Pipeline, results interface{}) error {
	f.lastCollection = collection
	f.lastPipeline = pipeline
	if f.aggErr != nil {
		return f.aggErr
	}
	setSlice(results, f.aggResult)
	return nil
}

func (f *fakeExecutor) CreateIndexes(_ context.Context, collection string, models []mongo.IndexModel) ([]string, error) {
	f.lastCollection = collection
	f.lastIndexes = models
	return f.indexNames, f.indexErr
}

func (f *fakeExecutor) Explain(_ context.Context, collection string, filter interface{}, result interface{}) error {
	f.lastCollection = collection
	f.lastFilter = filter
	if f.explainErr != nil {
		return f.explainErr
	}
	resp := explainResponse{ExecutionStats: f.explainStats}
	reflect.ValueOf(result).Elem().Set(reflect.ValueOf(resp))
	return nil
}
