/*
Package mongodataset provides functions to store the rows of a dataset as
documents of a MongoDB collection and to load them back.

Every row is stored as a document with a field per feature. Documents are read
back sorted by their _id field.
*/
package mongodataset

import (
	"context"
	"fmt"
	"strings"

	"github.com/bendazz/stacking/dataset"
	"github.com/bendazz/stacking/feature"
	mgo "gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"
)

/*
Iter is an interface for the iteration over the documents of a query, as
performed by *mgo.Iter.
*/
type Iter interface {
	Next(result interface{}) bool
	Err() error
	Close() error
}

/*
Write takes a context, a MongoDB session, a collection name, a slice of
features and a slice of rows and inserts a document per row in the collection
of the session default database. It returns the number of rows inserted or an
error.
*/
func Write(ctx context.Context, session *mgo.Session, collection string, features []feature.Feature, rows []dataset.Row) (int, error) {
	if err := checkFeatureNames(features); err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}
	docs := make([]interface{}, 0, len(rows))
	for i, r := range rows {
		doc, err := documentFromRow(r, features)
		if err != nil {
			return 0, fmt.Errorf("row %d: %v", i, err)
		}
		docs = append(docs, doc)
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	err := session.DB("").C(collection).Insert(docs...)
	if err != nil {
		return 0, fmt.Errorf("inserting %d rows in collection %s: %v", len(docs), collection, err)
	}
	return len(docs), nil
}

/*
Replace takes the same arguments as Write and stores the rows in a collection
that holds only them: every document previously in it is removed first.
*/
func Replace(ctx context.Context, session *mgo.Session, collection string, features []feature.Feature, rows []dataset.Row) (int, error) {
	if err := checkFeatureNames(features); err != nil {
		return 0, err
	}
	_, err := session.DB("").C(collection).RemoveAll(nil)
	if err != nil {
		return 0, fmt.Errorf("clearing collection %s: %v", collection, err)
	}
	return Write(ctx, session, collection, features, rows)
}

/*
Read takes a context, a MongoDB session, a collection name and a slice of
features and returns a dataset with a row for every document in the collection
of the session default database, or an error.
*/
func Read(ctx context.Context, session *mgo.Session, collection string, features []feature.Feature) (*dataset.Dataset, error) {
	if err := checkFeatureNames(features); err != nil {
		return nil, err
	}
	iter := session.DB("").C(collection).Find(nil).Sort("_id").Iter()
	return ReadFrom(ctx, iter, features)
}

/*
ReadFrom takes a context, an Iter over bson.M documents and a slice of
features and returns a dataset with a row for every document, or an error.
The iterator is closed before returning.
*/
func ReadFrom(ctx context.Context, iter Iter, features []feature.Feature) (*dataset.Dataset, error) {
	defer iter.Close()
	var rows []dataset.Row
	for i := 0; ; i++ {
		var doc bson.M
		if !iter.Next(&doc) {
			break
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		r, err := rowFromDocument(doc, features)
		if err != nil {
			return nil, fmt.Errorf("reading document %d: %v", i, err)
		}
		rows = append(rows, r)
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return dataset.New(features, rows)
}

func documentFromRow(r dataset.Row, features []feature.Feature) (bson.M, error) {
	if len(r) != len(features) {
		return nil, fmt.Errorf("%d values for %d features", len(r), len(features))
	}
	doc := make(bson.M, len(features))
	for i, f := range features {
		if _, err := f.Valid(r[i]); err != nil {
			return nil, err
		}
		doc[f.Name()] = r[i]
	}
	return doc, nil
}

func rowFromDocument(doc bson.M, features []feature.Feature) (dataset.Row, error) {
	r := make(dataset.Row, len(features))
	for i, f := range features {
		v, ok := doc[f.Name()]
		if !ok || v == nil {
			return nil, fmt.Errorf("no value for feature %s", f.Name())
		}
		switch f.(type) {
		case *feature.ContinuousFeature:
			switch n := v.(type) {
			case float64:
				r[i] = n
			case int:
				r[i] = float64(n)
			case int64:
				r[i] = float64(n)
			default:
				return nil, fmt.Errorf("continuous feature %s got %T value", f.Name(), v)
			}
		default:
			s, ok := v.(string)
			if !ok {
				return nil, fmt.Errorf("discrete feature %s got %T value", f.Name(), v)
			}
			r[i] = s
		}
	}
	return r, nil
}

func checkFeatureNames(features []feature.Feature) error {
	for _, f := range features {
		fName := f.Name()
		if fName == "_id" {
			return fmt.Errorf("invalid feature name %q: reserved collection field", "_id")
		}
		if strings.ContainsAny(fName, ".$") {
			return fmt.Errorf("invalid feature name %q: contains reserved characters %q or %q", fName, ".", "$")
		}
	}
	return nil
}
