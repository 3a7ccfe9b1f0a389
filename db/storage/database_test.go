package storage

import (
	"bytes"
	"io/ioutil"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func requireSuccessGet(t *testing.T, db Reader, key []byte, correctValue []byte) {
	value, err := db.Get(key)
	if err != nil {
		t.Fatalf("Failed Get key=%v, err: %v", string(key), err)
	}
	if bytes.Compare(value, correctValue) != 0 {
		t.Fatalf("Error value for key=%v. got %v, expecting %v", string(key), string(value), string(correctValue))
	}
}

func requireErrorGet(t *testing.T, db Reader, key []byte) {
	_, err := db.Get(key)
	if err == nil {
		t.Fatalf("Get non-existent key=%v", string(key))
	}
}

func requireSuccessPut(t *testing.T, db Writer, key []byte, value []byte) {
	err := db.Put(key, value)
	if err != nil {
		t.Fatalf("Failed Put key=%v, value=%v, err %v", string(key), string(value), err)
	}
}

func requireSuccessDel(t *testing.T, db Writer, key []byte) {
	err := db.Delete(key)
	if err != nil {
		t.Fatalf("Failed Delete key=%v, err %v", string(key), err)
	}
}

// collect returns the keys and values of [start, limit) as "k=v" strings.
func collect(t *testing.T, db Reader, start, limit []byte) []string {
	var pairs []string
	err := db.Iterate(start, limit, func(key, value []byte) bool {
		pairs = append(pairs, string(key)+"="+string(value))
		return true
	})
	if err != nil {
		t.Fatalf("Failed Iterate, err: %v", err)
	}
	return pairs
}

func dbTest(t *testing.T, db Database) {

	// fail to get non-existent keys
	requireErrorGet(t, db, []byte("key_one"))
	requireErrorGet(t, db, []byte("key_two"))
	requireErrorGet(t, db, []byte("key_three"))

	// normal puts
	requireSuccessPut(t, db, []byte("key_one"), []byte("value_one"))
	requireSuccessPut(t, db, []byte("key_two"), []byte("value_two"))
	requireSuccessPut(t, db, []byte("key_three"), []byte("value_three"))

	// fetched values must be the same as put values
	requireSuccessGet(t, db, []byte("key_one"), []byte("value_one"))
	requireSuccessGet(t, db, []byte("key_two"), []byte("value_two"))
	requireSuccessGet(t, db, []byte("key_three"), []byte("value_three"))

	// delete existent keys
	requireSuccessDel(t, db, []byte("key_two"))

	// it's ok to return nil error when deleting non-existent keys
	requireSuccessDel(t, db, []byte("key_ten"))

	// key_two was deleted, cannot get it
	requireErrorGet(t, db, []byte("key_two"))

	// key_three is still available
	requireSuccessGet(t, db, []byte("key_three"), []byte("value_three"))

	// puts 2 more k-v
	requireSuccessPut(t, db, []byte("key_four"), []byte("value_four"))
	requireSuccessPut(t, db, []byte("key_five"), []byte("value_five"))

	// range scan for key_five, key_four, key_one. key_three is filtered by limit "key_s"
	got := collect(t, db, []byte("key_"), []byte("key_s"))
	want := []string{"key_five=value_five", "key_four=value_four", "key_one=value_one"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("Incorrect range scan, got %v, expecting %v", got, want)
	}

	// an early stop visits only the first key
	var first []string
	_ = db.Iterate(nil, nil, func(key, _ []byte) bool {
		first = append(first, string(key))
		return false
	})
	if len(first) != 1 || first[0] != "key_five" {
		t.Fatalf("Incorrect early stop, got %v", first)
	}

	// batch of deletions and puts
	b := db.NewBatch()
	b.Delete([]byte("key_one"))
	b.Delete([]byte("key_three"))
	b.Delete([]byte("key_five"))
	b.Delete([]byte("key_four"))
	b.Put([]byte("key_two"), []byte("2"))
	if err := b.Write(); err != nil {
		t.Fatal(err)
	}

	// test what's left by the batch
	requireSuccessGet(t, db, []byte("key_two"), []byte("2"))
	requireErrorGet(t, db, []byte("key_four"))
	requireErrorGet(t, db, []byte("key_five"))
}

func TestMemoryDatabase(t *testing.T) {
	db := NewMemoryDatabase()
	defer db.Close()

	dbTest(t, db)
}

func TestRedblackDatabase(t *testing.T) {
	db := NewRedblackDatabase()
	defer db.Close()

	dbTest(t, db)
}

func TestNamespace(t *testing.T) {
	myassert := assert.New(t)
	base := NewMemoryDatabase()
	alice, bob := NewNamespace(base, "alice"), NewNamespace(base, "bob")

	dbTest(t, alice)
	requireErrorGet(t, bob, []byte("key_two"))
	requireSuccessPut(t, bob, []byte("key_two"), []byte("bob"))
	requireSuccessGet(t, alice, []byte("key_two"), []byte("2"))

	value, err := alice.GetFrom(base, []byte("key_two"))
	myassert.NoError(err)
	myassert.Equal([]byte("2"), value)
	requireSuccessGet(t, base, []byte("bob\x00key_two"), []byte("bob"))
}

const letterBytes = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

func randomString(size uint) string {
	b := make([]byte, size)
	for i := range b {
		b[i] = letterBytes[rand.Intn(len(letterBytes))]
	}
	return string(b)
}

func TestLevelDatabase(t *testing.T) {
	dir, err := ioutil.TempDir("", "lvldb")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	fn := filepath.Join(dir, randomString(8))
	db, err := NewLevelDatabase(fn)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	dbTest(t, db)
}

func TestTrxDatabase(t *testing.T) {
	db := NewTrxMemoryDatabase()
	defer db.Close()
	dbTest(t, db)

	requireSuccessPut(t, db, []byte("base"), []byte("0"))

	// outer commits, inner discards
	db.BeginTransaction()
	requireSuccessPut(t, db, []byte("outer"), []byte("1"))
	db.BeginTransaction()
	requireSuccessPut(t, db, []byte("inner"), []byte("2"))
	requireSuccessDel(t, db, []byte("base"))
	requireErrorGet(t, db, []byte("base"))
	if err := db.EndTransaction(false); err != nil {
		t.Fatal(err)
	}
	requireSuccessGet(t, db, []byte("base"), []byte("0"))
	requireErrorGet(t, db, []byte("inner"))

	// nested commit merges into the outer session only
	db.BeginTransaction()
	requireSuccessPut(t, db, []byte("inner"), []byte("3"))
	if err := db.EndTransaction(true); err != nil {
		t.Fatal(err)
	}
	requireSuccessGet(t, db, []byte("inner"), []byte("3"))
	if _, err := db.CleanRead().Get([]byte("inner")); err != ErrNotFound {
		t.Fatalf("uncommitted key visible in clean read")
	}
	if err := db.EndTransaction(true); err != nil {
		t.Fatal(err)
	}
	requireSuccessGet(t, db.CleanRead(), []byte("inner"), []byte("3"))
	requireSuccessGet(t, db, []byte("outer"), []byte("1"))

	if err := db.EndTransaction(true); err == nil {
		t.Fatalf("EndTransaction without BeginTransaction must fail")
	}
}

func TestSessionIterateAndDeletePrefix(t *testing.T) {
	myassert := assert.New(t)
	db := NewTrxMemoryDatabase()
	defer db.Close()

	requireSuccessPut(t, db, []byte("p/a"), []byte("1"))
	requireSuccessPut(t, db, []byte("p/b"), []byte("2"))
	requireSuccessPut(t, db, []byte("q/a"), []byte("3"))

	db.BeginTransaction()
	requireSuccessPut(t, db, []byte("p/c"), []byte("4"))
	requireSuccessDel(t, db, []byte("p/a"))

	myassert.Equal([]string{"p/b=2", "p/c=4"}, collect(t, db, []byte("p/"), PrefixLimit([]byte("p/"))))

	n, err := DeletePrefix(db, []byte("p/"))
	myassert.NoError(err)
	myassert.Equal(2, n)
	requireErrorGet(t, db, []byte("p/b"))
	requireSuccessGet(t, db, []byte("q/a"), []byte("3"))

	myassert.NoError(db.EndTransaction(false))
	requireSuccessGet(t, db, []byte("p/a"), []byte("1"))
}

func TestPrefixLimit(t *testing.T) {
	myassert := assert.New(t)
	myassert.Equal([]byte("p0"), PrefixLimit([]byte("p/")))
	myassert.Equal([]byte{0x02}, PrefixLimit([]byte{0x01, 0xff}))
	myassert.Nil(PrefixLimit([]byte{0xff, 0xff}))
}
