package tagged_test

import (
	"errors"
	"fmt"
	"hash/maphash"
	"net/netip"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shinji-kodama/tagged"
	"github.com/shinji-kodama/tagged/declare"
)

const testURL = "http://example.com"

type counterTag struct {
	declare.Default
	declare.Clone
	declare.Copy
	declare.Equal
	declare.StrictEqual
	declare.PartialOrd
	declare.Ord
	declare.Hash
	declare.Add
	declare.Sub
	declare.Mul
	declare.Div
	declare.Inner
	declare.Display
	declare.Parse
}

type counter = tagged.Type[uint64, counterTag]

type urlTag struct {
	declare.Deref
	declare.Display
	declare.Debug
}

type url = tagged.Type[string, urlTag]

// labels is a value type with reference semantics that knows how to copy itself.
type labels []string

func (l labels) Clone() labels { return slices.Clone(l) }

type labelsTag struct {
	declare.Clone
	declare.Equal
	declare.Inner
	declare.Map
	declare.Ref
	declare.ClonedRef
	declare.From
}

// secretTag declares nothing at all.
type secretTag struct{}

func TestNew_Inner(t *testing.T) {
	c := tagged.New[counterTag](uint64(7))
	assert.Equal(t, uint64(7), tagged.Inner(c))
}

// TestDefault verifies that the default wrapper unwraps to the value type's
// default, the zero value.
func TestDefault(t *testing.T) {
	c := tagged.Default[counterTag, uint64]()
	assert.Equal(t, uint64(0), tagged.Inner(c))

	var zero counter
	assert.True(t, tagged.Equal(c, zero))
}

// TestClone verifies the clone round-trip: the clone and the original unwrap
// to equal values, and the clone owns its storage.
func TestClone(t *testing.T) {
	original := tagged.New[labelsTag](labels{"a", "b"})
	clone := tagged.Clone(original)

	assert.Equal(t, labels{"a", "b"}, tagged.Inner(original))
	assert.Equal(t, tagged.Inner(original), tagged.Inner(clone))

	tagged.Inner(clone)[0] = "changed"
	assert.Equal(t, "a", tagged.Inner(original)[0], "clone must not share storage")
}

func TestCloneFunc(t *testing.T) {
	original := tagged.New[labelsTag](labels{"x"})
	clone := tagged.CloneFunc(original, func(l labels) labels { return append(labels{}, l...) })

	assert.Equal(t, tagged.Inner(original), tagged.Inner(clone))
}

func TestCopy(t *testing.T) {
	c := tagged.New[counterTag](uint64(3))
	v := tagged.Copy(c)
	assert.True(t, tagged.Equal(c, v))
	assert.Equal(t, uint64(3), tagged.Inner(c))
}

func TestEqual(t *testing.T) {
	a := tagged.New[counterTag](uint64(1))
	b := tagged.New[counterTag](uint64(1))
	c := tagged.New[counterTag](uint64(2))

	assert.True(t, tagged.Equal(a, b))
	assert.False(t, tagged.Equal(a, c))
	assert.True(t, tagged.StrictEqual(a, b))
	assert.False(t, tagged.StrictEqual(b, c))
}

type deadlineTag struct {
	declare.Equal
}

// TestEquivalent verifies that Equivalent uses the value's own Equal method:
// the same instant in two locations is Equal but not ==.
func TestEquivalent(t *testing.T) {
	instant := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	a := tagged.New[deadlineTag](instant)
	b := tagged.New[deadlineTag](instant.In(time.FixedZone("UTC+2", 2*60*60)))

	assert.True(t, tagged.Equivalent(a, b))
	assert.False(t, tagged.Equal(a, b))
}

func TestLessAndCompare(t *testing.T) {
	one := tagged.New[counterTag](uint64(1))
	two := tagged.New[counterTag](uint64(2))

	assert.True(t, tagged.Less(one, two))
	assert.False(t, tagged.Less(two, one))
	assert.Equal(t, -1, tagged.Compare(one, two))
	assert.Equal(t, 0, tagged.Compare(one, one))
	assert.Equal(t, 1, tagged.Compare(two, one))

	cs := []counter{two, one, tagged.New[counterTag](uint64(0))}
	slices.SortFunc(cs, tagged.Compare[uint64, counterTag])
	got := make([]uint64, 0, len(cs))
	for _, c := range cs {
		got = append(got, tagged.Inner(c))
	}
	assert.Equal(t, []uint64{0, 1, 2}, got)
}

// TestHash verifies that hashing a wrapper is hashing its value.
func TestHash(t *testing.T) {
	seed := maphash.MakeSeed()
	a := tagged.New[counterTag](uint64(42))
	b := tagged.New[counterTag](uint64(42))

	assert.Equal(t, tagged.Hash(seed, a), tagged.Hash(seed, b))
	assert.Equal(t, maphash.Comparable(seed, uint64(42)), tagged.Hash(seed, a))

	var h1, h2 maphash.Hash
	h1.SetSeed(seed)
	h2.SetSeed(seed)
	tagged.WriteHash(&h1, a)
	maphash.WriteComparable(&h2, uint64(42))
	assert.Equal(t, h2.Sum64(), h1.Sum64())
}

func TestArithmetic(t *testing.T) {
	c := tagged.New[counterTag](uint64(10))

	assert.Equal(t, uint64(15), tagged.Inner(tagged.Add(c, 5)))
	assert.Equal(t, uint64(7), tagged.Inner(tagged.Sub(c, 3)))
	assert.Equal(t, uint64(40), tagged.Inner(tagged.Mul(c, 4)))
	assert.Equal(t, uint64(3), tagged.Inner(tagged.Div(c, 3)))

	assert.Panics(t, func() { tagged.Div(c, 0) }, "integer division by zero panics as it does for V")
}

type pathTag struct {
	declare.Add
	declare.Inner
}

func TestAdd_String(t *testing.T) {
	p := tagged.New[pathTag]("/usr")
	assert.Equal(t, "/usr/local", tagged.Inner(tagged.Add(p, "/local")))
}

func TestDeref(t *testing.T) {
	u := tagged.New[urlTag](testURL)
	assert.True(t, strings.Contains(tagged.Deref(u), "http"))
	assert.Equal(t, len(testURL), len(tagged.Deref(u)))
}

func TestFromAndFromSlice(t *testing.T) {
	single := tagged.From[labelsTag](labels{"only"})
	assert.Equal(t, labels{"only"}, tagged.Inner(single))

	many := tagged.FromSlice[labelsTag]([]labels{{"a"}, {"b"}})
	require.Len(t, many, 2)
	assert.Equal(t, labels{"b"}, tagged.Inner(many[1]))

	assert.Nil(t, tagged.FromSlice[labelsTag, labels](nil))
}

func TestMapAndTryMap(t *testing.T) {
	l := tagged.New[labelsTag](labels{"a", "b", "c"})

	n := tagged.Map(l, func(l labels) int { return len(l) })
	assert.Equal(t, reflect.TypeFor[tagged.Type[int, labelsTag]](), reflect.TypeOf(n))

	parsed, err := tagged.TryMap(tagged.New[labelsTag]("12"), strconv.Atoi)
	require.NoError(t, err)
	assert.Equal(t, reflect.TypeFor[tagged.Type[int, labelsTag]](), reflect.TypeOf(parsed))

	_, err = tagged.TryMap(tagged.New[labelsTag]("twelve"), strconv.Atoi)
	var numErr *strconv.NumError
	require.ErrorAs(t, err, &numErr, "the mapping function's error is returned unchanged")
	assert.Equal(t, "twelve", numErr.Num)
}

func TestRefAndCloneRef(t *testing.T) {
	l := tagged.New[labelsTag](labels{"a"})
	ref := tagged.Ref(&l)
	assert.Equal(t, reflect.TypeFor[tagged.Type[*labels, labelsTag]](), reflect.TypeOf(ref))

	owned := tagged.CloneRef(ref)
	tagged.Inner(owned)[0] = "z"
	assert.Equal(t, labels{"a"}, tagged.Inner(l), "CloneRef uses the value's Clone method")
}

func TestCloneRef_PlainValue(t *testing.T) {
	v := 5
	owned := tagged.CloneRef(tagged.New[labelsTag](&v))
	v = 6
	assert.Equal(t, 5, tagged.Inner(owned))
}

// TestDistinctTypes checks at run time what the compiler enforces: the same
// value type under two markers gives two different types.
func TestDistinctTypes(t *testing.T) {
	a := reflect.TypeFor[tagged.Type[uint64, counterTag]]()
	b := reflect.TypeFor[tagged.Type[uint64, secretTag]]()
	assert.NotEqual(t, a, b)
	assert.False(t, a.AssignableTo(b))
	assert.False(t, b.AssignableTo(a))
}

func TestPermissive(t *testing.T) {
	type anyTag struct{ declare.Permissive }
	var _ tagged.Permissive = anyTag{}

	c := tagged.Default[anyTag, int]()
	c = tagged.Add(c, 2)
	assert.Equal(t, 2, tagged.Inner(c))
	assert.Equal(t, "2", fmt.Sprint(c))

	ip, err := tagged.Parse[anyTag, netip.Addr]("10.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.1", tagged.Display(ip))
}

func TestCapabilityError(t *testing.T) {
	err := &tagged.CapabilityError{Type: "tagged.Type[int,main.idTag]", Capability: "TransparentSerialize"}
	assert.Equal(t, "tagged: tagged.Type[int,main.idTag] does not declare TransparentSerialize", err.Error())
	assert.False(t, errors.Is(err, tagged.ErrNotParseable))
}
