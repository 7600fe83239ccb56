// Package financesvc - Test lập kế hoạch quyết toán tham lam không chia nhỏ nghĩa vụ.
package financesvc

import (
	"context"
	"errors"
	"testing"

	"creator_panel/internal/api/actor"
	financemodels "creator_panel/internal/api/finance/models"
	"creator_panel/internal/common"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestPlanSettlement_TieuNoCuTruoc(t *testing.T) {
	entries := []financemodels.LedgerEntry{
		entry(50, 300, financemodels.PayStatusUnpaid),
		entry(30, 100, financemodels.PayStatusUnpaid),
		entry(20, 200, financemodels.PayStatusUnpaid),
	}
	plan := PlanSettlement(entries, 60)
	// cũ nhất trước: 30 (t=100) rồi 20 (t=200); 50 (t=300) không vừa phần dư 10
	if len(plan.Consumed) != 2 {
		t.Fatalf("mong tiêu 2 nghĩa vụ, nhận %d", len(plan.Consumed))
	}
	if plan.Consumed[0].Amount != 30 || plan.Consumed[1].Amount != 20 {
		t.Errorf("thứ tự tiêu sai: %v, %v", plan.Consumed[0].Amount, plan.Consumed[1].Amount)
	}
	if plan.ConsumedTotal != 50 || plan.Remainder != 10 {
		t.Errorf("mong (total=50, remainder=10), nhận (%v, %v)", plan.ConsumedTotal, plan.Remainder)
	}
}

func TestPlanSettlement_DungKhiKhongVua(t *testing.T) {
	// gặp nghĩa vụ không vừa thì dừng, không nhảy qua để tiêu nghĩa vụ mới hơn
	entries := []financemodels.LedgerEntry{
		entry(100, 100, financemodels.PayStatusUnpaid),
		entry(10, 200, financemodels.PayStatusUnpaid),
	}
	plan := PlanSettlement(entries, 50)
	if len(plan.Consumed) != 0 {
		t.Errorf("nghĩa vụ đầu không vừa phải dừng ngay, nhận %d nghĩa vụ được tiêu", len(plan.Consumed))
	}
	if plan.Remainder != 50 {
		t.Errorf("remainder phải giữ nguyên 50, nhận %v", plan.Remainder)
	}
}

func TestPlanSettlement_BoQuaDaTra(t *testing.T) {
	entries := []financemodels.LedgerEntry{
		entry(30, 100, financemodels.PayStatusPaid),
		entry(40, 200, financemodels.PayStatusUnpaid),
	}
	plan := PlanSettlement(entries, 100)
	if len(plan.Consumed) != 1 || plan.Consumed[0].Amount != 40 {
		t.Errorf("chỉ nghĩa vụ chưa trả được tiêu, nhận %+v", plan.Consumed)
	}
}

func TestPlanSettlement_KhongBaoGioAmNo(t *testing.T) {
	entries := []financemodels.LedgerEntry{
		entry(30, 100, financemodels.PayStatusUnpaid),
		entry(30, 200, financemodels.PayStatusUnpaid),
	}
	plan := PlanSettlement(entries, 45)
	// tiêu 30 đầu, 30 sau không vừa phần dư 15
	if plan.ConsumedTotal != 30 || plan.Remainder != 15 {
		t.Errorf("mong (30, 15), nhận (%v, %v)", plan.ConsumedTotal, plan.Remainder)
	}
	if plan.Remainder < 0 {
		t.Error("remainder không bao giờ được âm")
	}
}

func TestPlanSettlement_KhopDungRanhGioi(t *testing.T) {
	entries := []financemodels.LedgerEntry{
		entry(150, 100, financemodels.PayStatusUnpaid),
	}
	plan := PlanSettlement(entries, 150)
	if len(plan.Consumed) != 1 || plan.Remainder != 0 {
		t.Errorf("số tiền khớp đúng phải tiêu trọn nghĩa vụ, nhận (%d, %v)", len(plan.Consumed), plan.Remainder)
	}
}

func TestPlanSettlement_SoTienKhongDuong(t *testing.T) {
	entries := []financemodels.LedgerEntry{entry(30, 100, financemodels.PayStatusUnpaid)}
	for _, amount := range []float64{0, -10} {
		plan := PlanSettlement(entries, amount)
		if len(plan.Consumed) != 0 {
			t.Errorf("số tiền %v không được tiêu nghĩa vụ nào", amount)
		}
	}
}

func TestSettle_GateCapQuanLy(t *testing.T) {
	svc := &SettlementService{}
	ctx := context.Background()
	payee := financemodels.Payee{Kind: financemodels.PayeeCreator, ID: primitive.NewObjectID()}

	for _, role := range []string{actor.RoleProducer, actor.RoleVoiceTalent, actor.RoleEditor, actor.RoleViewer} {
		_, err := svc.Settle(ctx, actor.Actor{ID: "u1", Role: role}, payee, 100, "", "")
		if !errors.Is(err, common.ErrForbidden) {
			t.Errorf("role %s phải bị chặn quyết toán, nhận %v", role, err)
		}
	}

	// ADMIN và MANAGER qua gate; số tiền không dương bị chặn trước khi đụng storage
	for _, role := range []string{actor.RoleAdmin, actor.RoleManager} {
		_, err := svc.Settle(ctx, actor.Actor{ID: "u1", Role: role}, payee, 0, "", "")
		if errors.Is(err, common.ErrForbidden) {
			t.Errorf("role %s phải qua được gate quyết toán", role)
		}
		if err == nil {
			t.Errorf("số tiền 0 phải bị từ chối")
		}
	}
}
