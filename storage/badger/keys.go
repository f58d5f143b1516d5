package badger

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/tastory/tastory/core"
)

// Key prefixes for different data types
const (
	recipeRecordPrefix  = "recrec"
	queryLogPrefix      = "qlogrec"
	queryLogTimePrefix  = "qlogtime"
	queryLogIDSeq       = "qlogseq"
	trendingSnapshotKey = "trendsnap"
)

// makeRecipeKey generates a key for a recipe by ID.
func makeRecipeKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", recipeRecordPrefix, id))
}

// makeQueryLogKey generates a key for a query log entry by ID.
func makeQueryLogKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", queryLogPrefix, id))
}

// makeQueryLogTimeKey generates a composite key for the time index.
// Format: prefix:timestamp:id
func makeQueryLogTimeKey(timestamp time.Time, id core.ID) []byte {
	prefix := queryLogTimePrefix + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 16 // 8 bytes for timestamp + 8 bytes for ID
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(timestamp.UnixMicro()))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

// makePartialQueryLogTimeKey generates a partial key for time range queries.
// Format: prefix:timestamp
func makePartialQueryLogTimeKey(timestamp time.Time) []byte {
	prefix := queryLogTimePrefix + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 8 // 8 bytes for timestamp
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(timestamp.UnixMicro()))
	return buf
}

// makeSnapshotKey generates the key for the persisted trending snapshot.
func makeSnapshotKey() []byte {
	return []byte(trendingSnapshotKey)
}
