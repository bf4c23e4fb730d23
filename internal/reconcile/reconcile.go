// Package reconcile は送信された子要素のリストと永続化済みの子要素を突き合わせ、
// 削除・更新・新規作成に振り分けます。DBには触れません。
package reconcile

import (
	"sort"

	"go_5_prayer_journal/internal/model"
)

// Match は既存の子要素と、それに対応する送信内容の組です
type Match[E, D any] struct {
	Current   E
	Submitted D
}

// Plan は Diff の結果です。Delete と Update の対象は互いに素で、合わせると既存IDの全体になります。
type Plan[E, D any] struct {
	Delete []uint        // 昇順
	Update []Match[E, D] // 送信順
	Create []D           // 送信順
}

// Diff は current (親に属する既存の子) と submitted (クライアントが送った完全なリスト) から Plan を作ります。
//
//   - ID が nil の送信内容は新規作成
//   - ID が current に含まれる送信内容はその要素の更新 (全フィールド上書き)
//   - ID が current に含まれない送信内容 (他の親の子や削除済みのID) も新規作成
//   - 送信されなかった既存の子は削除
//
// 同じIDが複数回送られた場合は最初の1件だけを更新に使い、残りは新規作成に回す。
func Diff[E, D any](current []E, submitted []D, currentID func(E) uint, submittedID func(D) *uint) Plan[E, D] {
	existing := make(map[uint]E, len(current))
	for _, c := range current {
		existing[currentID(c)] = c
	}

	var plan Plan[E, D]
	matched := make(map[uint]bool, len(submitted))
	for _, s := range submitted {
		id := submittedID(s)
		if id != nil {
			if c, ok := existing[*id]; ok && !matched[*id] {
				matched[*id] = true
				plan.Update = append(plan.Update, Match[E, D]{Current: c, Submitted: s})
				continue
			}
		}
		plan.Create = append(plan.Create, s)
	}

	for id := range existing {
		if !matched[id] {
			plan.Delete = append(plan.Delete, id)
		}
	}
	sort.Slice(plan.Delete, func(i, j int) bool { return plan.Delete[i] < plan.Delete[j] })

	return plan
}

// ResolveTags は送信されたタグIDのうち authoritative に存在するものだけを送信順・重複なしで返します。
// 存在しないIDは作成せずに dropped として返す。
func ResolveTags(submitted []uint, authoritative []model.Tag) (resolved []model.Tag, dropped []uint) {
	known := make(map[uint]model.Tag, len(authoritative))
	for _, t := range authoritative {
		known[t.ID] = t
	}

	resolved = make([]model.Tag, 0, len(submitted))
	seen := make(map[uint]bool, len(submitted))
	for _, id := range submitted {
		if seen[id] {
			continue
		}
		seen[id] = true
		if t, ok := known[id]; ok {
			resolved = append(resolved, t)
		} else {
			dropped = append(dropped, id)
		}
	}
	return resolved, dropped
}

// UniqueIDs は重複を除いたIDを元の順序で返します
func UniqueIDs(ids []uint) []uint {
	seen := make(map[uint]bool, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
