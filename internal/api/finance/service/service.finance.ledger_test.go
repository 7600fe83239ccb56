// Package financesvc - Test chuẩn hóa, trộn và phân trang sao kê.
package financesvc

import (
	"testing"

	financemodels "creator_panel/internal/api/finance/models"
	voiceovermodels "creator_panel/internal/api/voiceover/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func entry(amount float64, occurredAt int64, status string) financemodels.LedgerEntry {
	return financemodels.LedgerEntry{
		ID:         primitive.NewObjectID().Hex(),
		Source:     financemodels.SourcePayment,
		Amount:     amount,
		OccurredAt: occurredAt,
		Status:     status,
	}
}

func TestNormalizeStream_OccurredAtUuTienPaidAt(t *testing.T) {
	s := financemodels.Stream{ID: primitive.NewObjectID(), Amount: 100, CreatedAt: 1000, PaidAt: 2000}
	e := NormalizeStream(s)
	if e.OccurredAt != 2000 {
		t.Errorf("occurredAt phải là paidAt khi đã trả, nhận %d", e.OccurredAt)
	}
	if e.Status != financemodels.PayStatusPaid {
		t.Errorf("paidAt > 0 phải cho status paid, nhận %s", e.Status)
	}

	unpaid := financemodels.Stream{ID: primitive.NewObjectID(), Amount: 100, CreatedAt: 1000}
	e = NormalizeStream(unpaid)
	if e.OccurredAt != 1000 || e.Status != financemodels.PayStatusUnpaid {
		t.Errorf("chưa trả phải dùng createdAt và status unpaid, nhận (%d, %s)", e.OccurredAt, e.Status)
	}
}

func TestNormalizeScript_TheoPaidStatus(t *testing.T) {
	paid := voiceovermodels.VoiceScript{ID: primitive.NewObjectID(), Title: "S1", Price: 150, Status: voiceovermodels.ScriptStatusPaid, CreatedAt: 1000, PaidAt: 5000}
	e := NormalizeScript(paid)
	if e.Source != financemodels.SourceScript || e.Amount != 150 {
		t.Errorf("chuẩn hóa script sai: %+v", e)
	}
	if e.Status != financemodels.PayStatusPaid || e.OccurredAt != 5000 {
		t.Errorf("script PAID phải cho (paid, paidAt), nhận (%s, %d)", e.Status, e.OccurredAt)
	}

	approved := voiceovermodels.VoiceScript{ID: primitive.NewObjectID(), Price: 150, Status: voiceovermodels.ScriptStatusApproved, CreatedAt: 1000}
	if got := NormalizeScript(approved); got.Status != financemodels.PayStatusUnpaid {
		t.Errorf("script APPROVED phải là unpaid, nhận %s", got.Status)
	}
}

func TestNormalizePayoutRecord_LuonPaid(t *testing.T) {
	// payout luôn là đã trả bất kể field status mang giá trị gì
	r := financemodels.FinanceRecord{
		ID:        primitive.NewObjectID(),
		EntryType: financemodels.EntryTypePayout,
		Direction: financemodels.DirectionOut,
		Amount:    50,
		Status:    financemodels.PayStatusUnpaid,
		CreatedAt: 1000,
	}
	if got := NormalizePayoutRecord(r); got.Status != financemodels.PayStatusPaid {
		t.Errorf("payout phải luôn paid, nhận %s", got.Status)
	}
}

func TestMergeDesc_ThuTuGiamDanGiuaCacNguon(t *testing.T) {
	a := []financemodels.LedgerEntry{entry(1, 100, "unpaid"), entry(2, 300, "paid")}
	b := []financemodels.LedgerEntry{entry(3, 200, "unpaid"), entry(4, 400, "paid")}
	merged := MergeDesc(a, b)
	if len(merged) != 4 {
		t.Fatalf("mong 4 bản ghi, nhận %d", len(merged))
	}
	for i := 1; i < len(merged); i++ {
		if merged[i].OccurredAt > merged[i-1].OccurredAt {
			t.Fatalf("dãy không giảm dần tại vị trí %d: %d > %d", i, merged[i].OccurredAt, merged[i-1].OccurredAt)
		}
	}
}

func TestRollup_TongBangTongSoHoc(t *testing.T) {
	entries := []financemodels.LedgerEntry{
		entry(100, 1, financemodels.PayStatusPaid),
		entry(50, 2, financemodels.PayStatusUnpaid),
		entry(25, 3, financemodels.PayStatusUnpaid),
	}
	rollup := Rollup(entries)
	if rollup.TotalPaid != 100 {
		t.Errorf("totalPaid mong 100, nhận %v", rollup.TotalPaid)
	}
	if rollup.TotalUnpaid != 75 {
		t.Errorf("totalUnpaid mong 75, nhận %v", rollup.TotalUnpaid)
	}
	var sum float64
	for _, e := range entries {
		sum += e.Amount
	}
	if rollup.TotalPaid+rollup.TotalUnpaid != sum {
		t.Errorf("tổng rollup %v phải bằng tổng số học %v", rollup.TotalPaid+rollup.TotalUnpaid, sum)
	}
}

func TestPaginate_SauKhiTron(t *testing.T) {
	var entries []financemodels.LedgerEntry
	for i := int64(1); i <= 10; i++ {
		entries = append(entries, entry(float64(i), i*100, "unpaid"))
	}

	page, hasMore := Paginate(entries, 3, 0)
	if len(page) != 3 || !hasMore {
		t.Errorf("trang đầu mong (3, true), nhận (%d, %v)", len(page), hasMore)
	}

	page, hasMore = Paginate(entries, 3, 9)
	if len(page) != 1 || hasMore {
		t.Errorf("trang cuối mong (1, false), nhận (%d, %v)", len(page), hasMore)
	}

	page, hasMore = Paginate(entries, 3, 100)
	if len(page) != 0 || hasMore {
		t.Errorf("offset vượt quá mong (0, false), nhận (%d, %v)", len(page), hasMore)
	}
}

func TestScriptObligationFilter_LoaiKichBanBiTuChoiSauDuyet(t *testing.T) {
	// Kịch bản bị từ chối hay lưu trữ sau khi admin duyệt vẫn giữ adminApproved=true,
	// nhưng không còn là nghĩa vụ: filter phải ràng buộc status để quyết toán
	// không vơ phải bản ghi mà bước đánh dấu đã trả (guard APPROVED) sẽ không match.
	voiceActorID := primitive.NewObjectID()
	filter := ScriptObligationFilter(voiceActorID)

	if filter["voiceActorId"] != voiceActorID {
		t.Errorf("filter phải khóa theo voiceActorId, nhận %v", filter["voiceActorId"])
	}
	if filter["adminApproved"] != true {
		t.Errorf("filter phải yêu cầu adminApproved=true")
	}

	statusCond, ok := filter["status"].(bson.M)
	if !ok {
		t.Fatalf("filter phải ràng buộc status, nhận %v", filter["status"])
	}
	allowed, ok := statusCond["$in"].([]string)
	if !ok || len(allowed) != 2 {
		t.Fatalf("status phải giới hạn bằng $in hai trạng thái, nhận %v", statusCond)
	}
	seen := map[string]bool{}
	for _, s := range allowed {
		seen[s] = true
	}
	if !seen[voiceovermodels.ScriptStatusApproved] || !seen[voiceovermodels.ScriptStatusPaid] {
		t.Errorf("status cho phép phải là APPROVED và PAID, nhận %v", allowed)
	}
	if seen[voiceovermodels.ScriptStatusRejected] || seen[voiceovermodels.ScriptStatusArchived] {
		t.Errorf("kịch bản bị từ chối/lưu trữ không được nằm trong nghĩa vụ")
	}
}
