// Code generated by musgen-go. DO NOT EDIT.

package core

import (
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

var (
	mapaKZ1HwV4pJXERuSboJjΔtQΞΞ   = ord.NewMapSer[string, string](ord.String, ord.String)
	mapcTΔ8VAbuqNXIiqclrzBloQΞΞ   = ord.NewMapSer[string, float64](ord.String, varint.Float64)
	sliceBK5IAuIHFX2JigΔIXOWk9gΞΞ = ord.NewSliceSer[string](ord.String)
	sliceqMDw9WIulwΣgAao2yuVtowΞΞ = ord.NewSliceSer[TrendingItem](TrendingItemMUS)
	sliceqYZ3HnNΔaV6ΣRjNaΣbJzTgΞΞ = ord.NewSliceSer[float32](varint.Float32)
)

var IDMUS = iDMUS{}

type iDMUS struct{}

func (s iDMUS) Marshal(v ID, bs []byte) (n int) {
	return varint.Uint64.Marshal(uint64(v), bs)
}

func (s iDMUS) Unmarshal(bs []byte) (v ID, n int, err error) {
	tmp, n, err := varint.Uint64.Unmarshal(bs)
	if err != nil {
		return
	}
	v = ID(tmp)
	return
}

func (s iDMUS) Size(v ID) (size int) {
	return varint.Uint64.Size(uint64(v))
}

func (s iDMUS) Skip(bs []byte) (n int, err error) {
	return varint.Uint64.Skip(bs)
}

var TrendDirectionMUS = trendDirectionMUS{}

type trendDirectionMUS struct{}

func (s trendDirectionMUS) Marshal(v TrendDirection, bs []byte) (n int) {
	return varint.Int.Marshal(int(v), bs)
}

func (s trendDirectionMUS) Unmarshal(bs []byte) (v TrendDirection, n int, err error) {
	tmp, n, err := varint.Int.Unmarshal(bs)
	if err != nil {
		return
	}
	v = TrendDirection(tmp)
	return
}

func (s trendDirectionMUS) Size(v TrendDirection) (size int) {
	return varint.Int.Size(int(v))
}

func (s trendDirectionMUS) Skip(bs []byte) (n int, err error) {
	return varint.Int.Skip(bs)
}

var RecipeMUS = recipeMUS{}

type recipeMUS struct{}

func (s recipeMUS) Marshal(v Recipe, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += ord.String.Marshal(v.Name, bs[n:])
	n += sliceBK5IAuIHFX2JigΔIXOWk9gΞΞ.Marshal(v.Ingredients, bs[n:])
	n += sliceBK5IAuIHFX2JigΔIXOWk9gΞΞ.Marshal(v.Instructions, bs[n:])
	n += mapaKZ1HwV4pJXERuSboJjΔtQΞΞ.Marshal(v.Nutrition, bs[n:])
	n += varint.Float64.Marshal(v.Rating, bs[n:])
	n += varint.Int.Marshal(v.ReviewCount, bs[n:])
	n += ord.String.Marshal(v.Image, bs[n:])
	n += ord.String.Marshal(v.URL, bs[n:])
	n += mapaKZ1HwV4pJXERuSboJjΔtQΞΞ.Marshal(v.AdditionalInfo, bs[n:])
	n += sliceqYZ3HnNΔaV6ΣRjNaΣbJzTgΞΞ.Marshal(v.Vector, bs[n:])
	n += raw.TimeUnixMicro.Marshal(v.InsertedAt, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.UpdatedAt, bs[n:])
}

func (s recipeMUS) Unmarshal(bs []byte) (v Recipe, n int, err error) {
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Name, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Ingredients, n1, err = sliceBK5IAuIHFX2JigΔIXOWk9gΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Instructions, n1, err = sliceBK5IAuIHFX2JigΔIXOWk9gΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Nutrition, n1, err = mapaKZ1HwV4pJXERuSboJjΔtQΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Rating, n1, err = varint.Float64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.ReviewCount, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Image, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.URL, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.AdditionalInfo, n1, err = mapaKZ1HwV4pJXERuSboJjΔtQΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Vector, n1, err = sliceqYZ3HnNΔaV6ΣRjNaΣbJzTgΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.InsertedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.UpdatedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s recipeMUS) Size(v Recipe) (size int) {
	size = IDMUS.Size(v.Id)
	size += ord.String.Size(v.Name)
	size += sliceBK5IAuIHFX2JigΔIXOWk9gΞΞ.Size(v.Ingredients)
	size += sliceBK5IAuIHFX2JigΔIXOWk9gΞΞ.Size(v.Instructions)
	size += mapaKZ1HwV4pJXERuSboJjΔtQΞΞ.Size(v.Nutrition)
	size += varint.Float64.Size(v.Rating)
	size += varint.Int.Size(v.ReviewCount)
	size += ord.String.Size(v.Image)
	size += ord.String.Size(v.URL)
	size += mapaKZ1HwV4pJXERuSboJjΔtQΞΞ.Size(v.AdditionalInfo)
	size += sliceqYZ3HnNΔaV6ΣRjNaΣbJzTgΞΞ.Size(v.Vector)
	size += raw.TimeUnixMicro.Size(v.InsertedAt)
	return size + raw.TimeUnixMicro.Size(v.UpdatedAt)
}

func (s recipeMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceBK5IAuIHFX2JigΔIXOWk9gΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceBK5IAuIHFX2JigΔIXOWk9gΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = mapaKZ1HwV4pJXERuSboJjΔtQΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Float64.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = mapaKZ1HwV4pJXERuSboJjΔtQΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceqYZ3HnNΔaV6ΣRjNaΣbJzTgΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}

var QueryLogEntryMUS = queryLogEntryMUS{}

type queryLogEntryMUS struct{}

func (s queryLogEntryMUS) Marshal(v QueryLogEntry, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += ord.String.Marshal(v.RawQuery, bs[n:])
	n += ord.String.Marshal(v.NormalizedQuery, bs[n:])
	n += raw.TimeUnixMicro.Marshal(v.Timestamp, bs[n:])
	n += ord.String.Marshal(v.SessionId, bs[n:])
	return n + varint.Int.Marshal(v.ResultCount, bs[n:])
}

func (s queryLogEntryMUS) Unmarshal(bs []byte) (v QueryLogEntry, n int, err error) {
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.RawQuery, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.NormalizedQuery, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Timestamp, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.SessionId, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.ResultCount, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	return
}

func (s queryLogEntryMUS) Size(v QueryLogEntry) (size int) {
	size = IDMUS.Size(v.Id)
	size += ord.String.Size(v.RawQuery)
	size += ord.String.Size(v.NormalizedQuery)
	size += raw.TimeUnixMicro.Size(v.Timestamp)
	size += ord.String.Size(v.SessionId)
	return size + varint.Int.Size(v.ResultCount)
}

func (s queryLogEntryMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	return
}

var TrendingItemMUS = trendingItemMUS{}

type trendingItemMUS struct{}

func (s trendingItemMUS) Marshal(v TrendingItem, bs []byte) (n int) {
	n = ord.String.Marshal(v.Query, bs)
	n += varint.Int.Marshal(v.Count, bs[n:])
	n += varint.Float64.Marshal(v.Score, bs[n:])
	n += TrendDirectionMUS.Marshal(v.Trend, bs[n:])
	n += varint.Float64.Marshal(v.PercentChange, bs[n:])
	return n + ord.Bool.Marshal(v.HasPrevious, bs[n:])
}

func (s trendingItemMUS) Unmarshal(bs []byte) (v TrendingItem, n int, err error) {
	v.Query, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Count, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Score, n1, err = varint.Float64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Trend, n1, err = TrendDirectionMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.PercentChange, n1, err = varint.Float64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.HasPrevious, n1, err = ord.Bool.Unmarshal(bs[n:])
	n += n1
	return
}

func (s trendingItemMUS) Size(v TrendingItem) (size int) {
	size = ord.String.Size(v.Query)
	size += varint.Int.Size(v.Count)
	size += varint.Float64.Size(v.Score)
	size += TrendDirectionMUS.Size(v.Trend)
	size += varint.Float64.Size(v.PercentChange)
	return size + ord.Bool.Size(v.HasPrevious)
}

func (s trendingItemMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Float64.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = TrendDirectionMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Float64.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.Bool.Skip(bs[n:])
	n += n1
	return
}

var TrendingSnapshotMUS = trendingSnapshotMUS{}

type trendingSnapshotMUS struct{}

func (s trendingSnapshotMUS) Marshal(v TrendingSnapshot, bs []byte) (n int) {
	n = sliceqMDw9WIulwΣgAao2yuVtowΞΞ.Marshal(v.Items, bs)
	n += mapcTΔ8VAbuqNXIiqclrzBloQΞΞ.Marshal(v.Scores, bs[n:])
	n += raw.TimeUnixMicro.Marshal(v.LastUpdated, bs[n:])
	return n + varint.Int64.Marshal(v.ComputationDurationMs, bs[n:])
}

func (s trendingSnapshotMUS) Unmarshal(bs []byte) (v TrendingSnapshot, n int, err error) {
	v.Items, n, err = sliceqMDw9WIulwΣgAao2yuVtowΞΞ.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Scores, n1, err = mapcTΔ8VAbuqNXIiqclrzBloQΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.LastUpdated, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.ComputationDurationMs, n1, err = varint.Int64.Unmarshal(bs[n:])
	n += n1
	return
}

func (s trendingSnapshotMUS) Size(v TrendingSnapshot) (size int) {
	size = sliceqMDw9WIulwΣgAao2yuVtowΞΞ.Size(v.Items)
	size += mapcTΔ8VAbuqNXIiqclrzBloQΞΞ.Size(v.Scores)
	size += raw.TimeUnixMicro.Size(v.LastUpdated)
	return size + varint.Int64.Size(v.ComputationDurationMs)
}

func (s trendingSnapshotMUS) Skip(bs []byte) (n int, err error) {
	n, err = sliceqMDw9WIulwΣgAao2yuVtowΞΞ.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = mapcTΔ8VAbuqNXIiqclrzBloQΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Int64.Skip(bs[n:])
	n += n1
	return
}

var VocabularyEntryMUS = vocabularyEntryMUS{}

type vocabularyEntryMUS struct{}

func (s vocabularyEntryMUS) Marshal(v VocabularyEntry, bs []byte) (n int) {
	n = ord.String.Marshal(v.Term, bs)
	return n + varint.Int.Marshal(v.Frequency, bs[n:])
}

func (s vocabularyEntryMUS) Unmarshal(bs []byte) (v VocabularyEntry, n int, err error) {
	v.Term, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Frequency, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	return
}

func (s vocabularyEntryMUS) Size(v VocabularyEntry) (size int) {
	size = ord.String.Size(v.Term)
	return size + varint.Int.Size(v.Frequency)
}

func (s vocabularyEntryMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	return
}
