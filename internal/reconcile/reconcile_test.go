package reconcile

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"

	"go_5_prayer_journal/internal/model"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type child struct {
	ID    uint
	Title string
}

type desc struct {
	ID    *uint
	Title string
}

func childID(c child) uint { return c.ID }
func descID(d desc) *uint  { return d.ID }

func idPtr(id uint) *uint { return &id }

func TestDiff(t *testing.T) {
	tests := []struct {
		name      string
		current   []child
		submitted []desc
		want      Plan[child, desc]
	}{
		{
			name:      "正常系: 更新・新規作成・削除が混在",
			current:   []child{{ID: 1, Title: "A"}, {ID: 2, Title: "B"}},
			submitted: []desc{{ID: idPtr(1), Title: "A2"}, {Title: "C"}},
			want: Plan[child, desc]{
				Delete: []uint{2},
				Update: []Match[child, desc]{{Current: child{ID: 1, Title: "A"}, Submitted: desc{ID: idPtr(1), Title: "A2"}}},
				Create: []desc{{Title: "C"}},
			},
		},
		{
			name:      "正常系: 既存なしで新規作成のみ",
			current:   nil,
			submitted: []desc{{Title: "X"}},
			want:      Plan[child, desc]{Create: []desc{{Title: "X"}}},
		},
		{
			name:      "正常系: 空のリストで全削除",
			current:   []child{{ID: 1}},
			submitted: nil,
			want:      Plan[child, desc]{Delete: []uint{1}},
		},
		{
			name:      "正常系: 削除対象は昇順",
			current:   []child{{ID: 9}, {ID: 3}, {ID: 5}},
			submitted: []desc{{ID: idPtr(5)}},
			want: Plan[child, desc]{
				Delete: []uint{3, 9},
				Update: []Match[child, desc]{{Current: child{ID: 5}, Submitted: desc{ID: idPtr(5)}}},
			},
		},
		{
			name:      "境界値: 親に属さないIDは新規作成として扱う",
			current:   []child{{ID: 1, Title: "A"}},
			submitted: []desc{{ID: idPtr(1), Title: "A"}, {ID: idPtr(77), Title: "stale"}},
			want: Plan[child, desc]{
				Update: []Match[child, desc]{{Current: child{ID: 1, Title: "A"}, Submitted: desc{ID: idPtr(1), Title: "A"}}},
				Create: []desc{{ID: idPtr(77), Title: "stale"}},
			},
		},
		{
			name:      "境界値: 同じIDが重複した場合は2件目以降を新規作成",
			current:   []child{{ID: 1, Title: "A"}},
			submitted: []desc{{ID: idPtr(1), Title: "first"}, {ID: idPtr(1), Title: "second"}},
			want: Plan[child, desc]{
				Update: []Match[child, desc]{{Current: child{ID: 1, Title: "A"}, Submitted: desc{ID: idPtr(1), Title: "first"}}},
				Create: []desc{{ID: idPtr(1), Title: "second"}},
			},
		},
		{
			name:      "正常系: 新規作成は送信順を保つ",
			current:   nil,
			submitted: []desc{{Title: "3"}, {Title: "1"}, {Title: "2"}},
			want:      Plan[child, desc]{Create: []desc{{Title: "3"}, {Title: "1"}, {Title: "2"}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Diff(tt.current, tt.submitted, childID, descID)
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Diff() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// Delete と Update の対象は互いに素で、合わせると既存IDの全体になる
func TestDiff_PartitionsExistingIDs(t *testing.T) {
	r := rand.New(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		var current []child
		existing := map[uint]bool{}
		for id := uint(1); id <= 20; id++ {
			if r.Intn(2) == 0 {
				current = append(current, child{ID: id})
				existing[id] = true
			}
		}

		var submitted []desc
		used := map[uint]bool{}
		n := r.Intn(15)
		for j := 0; j < n; j++ {
			if r.Intn(3) == 0 {
				submitted = append(submitted, desc{})
				continue
			}
			id := uint(r.Intn(30) + 1)
			if used[id] {
				continue
			}
			used[id] = true
			submitted = append(submitted, desc{ID: idPtr(id)})
		}

		plan := Diff(current, submitted, childID, descID)

		union := map[uint]bool{}
		for _, id := range plan.Delete {
			union[id] = true
		}
		for _, m := range plan.Update {
			assert.False(t, union[m.Current.ID], "id %d is both deleted and updated", m.Current.ID)
			union[m.Current.ID] = true
		}
		assert.Equal(t, existing, union)
		assert.Equal(t, len(submitted), len(plan.Update)+len(plan.Create))
	}
}

// 適用結果に対して同じ内容を再送しても、新規作成・削除は発生しない
func TestDiff_Idempotent(t *testing.T) {
	current := []child{{ID: 1, Title: "A"}, {ID: 2, Title: "B"}}
	submitted := []desc{{ID: idPtr(1), Title: "A2"}, {Title: "C"}}

	plan := Diff(current, submitted, childID, descID)

	nextID := uint(3)
	var applied []child
	var resubmitted []desc
	for _, m := range plan.Update {
		applied = append(applied, child{ID: m.Current.ID, Title: m.Submitted.Title})
		resubmitted = append(resubmitted, desc{ID: idPtr(m.Current.ID), Title: m.Submitted.Title})
	}
	for _, d := range plan.Create {
		applied = append(applied, child{ID: nextID, Title: d.Title})
		resubmitted = append(resubmitted, desc{ID: idPtr(nextID), Title: d.Title})
		nextID++
	}

	second := Diff(applied, resubmitted, childID, descID)
	assert.Empty(t, second.Delete)
	assert.Empty(t, second.Create)
	assert.Len(t, second.Update, len(applied))
	for _, m := range second.Update {
		assert.Equal(t, m.Current.Title, m.Submitted.Title)
	}
}

func TestResolveTags(t *testing.T) {
	authoritative := []model.Tag{{ID: 5, Name: "family"}, {ID: 7, Name: "work"}}

	tests := []struct {
		name        string
		submitted   []uint
		want        []model.Tag
		wantDropped []uint
	}{
		{
			name:        "正常系: 存在しないIDは除外",
			submitted:   []uint{5, 99},
			want:        []model.Tag{{ID: 5, Name: "family"}},
			wantDropped: []uint{99},
		},
		{
			name:      "正常系: 送信順を保ち重複を除く",
			submitted: []uint{7, 5, 7},
			want:      []model.Tag{{ID: 7, Name: "work"}, {ID: 5, Name: "family"}},
		},
		{
			name:      "境界値: 空",
			submitted: nil,
			want:      []model.Tag{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, dropped := ResolveTags(tt.submitted, authoritative)
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty(), cmpopts.IgnoreFields(model.Tag{}, "JournalEntries", "PrayerRequests")); diff != "" {
				t.Errorf("ResolveTags() mismatch (-want +got):\n%s", diff)
			}
			assert.ElementsMatch(t, tt.wantDropped, dropped)
		})
	}
}

// resolved = submitted ∩ authoritative
func TestResolveTags_IsIntersection(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		var authoritative []model.Tag
		known := map[uint]bool{}
		for id := uint(1); id <= 10; id++ {
			if r.Intn(2) == 0 {
				authoritative = append(authoritative, model.Tag{ID: id})
				known[id] = true
			}
		}
		var submitted []uint
		n := r.Intn(12)
		for j := 0; j < n; j++ {
			submitted = append(submitted, uint(r.Intn(15)+1))
		}

		resolved, _ := ResolveTags(submitted, authoritative)

		want := map[uint]bool{}
		for _, id := range submitted {
			if known[id] {
				want[id] = true
			}
		}
		got := map[uint]bool{}
		for _, tag := range resolved {
			assert.True(t, known[tag.ID])
			got[tag.ID] = true
		}
		assert.Equal(t, want, got)
		assert.Len(t, resolved, len(got))
	}
}

func TestUniqueIDs(t *testing.T) {
	assert.Equal(t, []uint{3, 1, 2}, UniqueIDs([]uint{3, 1, 3, 2, 1}))
	assert.Empty(t, UniqueIDs(nil))
}
