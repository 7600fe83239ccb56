// Package financesvc xử lý sổ cái và quyết toán cho người nhận tiền.
package financesvc

import (
	"context"
	"fmt"
	"time"

	basesvc "creator_panel/internal/api/base/service"
	financemodels "creator_panel/internal/api/finance/models"
	"creator_panel/internal/global"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StreamService xử lý logic cho bản ghi doanh thu stream
type StreamService struct {
	*basesvc.BaseServiceMongoImpl[financemodels.Stream]
}

// NewStreamService tạo mới StreamService
func NewStreamService() (*StreamService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.FinanceStreams)
	if !exist {
		return nil, fmt.Errorf("failed to get %s collection", global.MongoDB_ColNames.FinanceStreams)
	}
	return &StreamService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[financemodels.Stream](collection),
	}, nil
}

// PaymentService xử lý logic cho khoản thanh toán chung
type PaymentService struct {
	*basesvc.BaseServiceMongoImpl[financemodels.Payment]
}

// NewPaymentService tạo mới PaymentService
func NewPaymentService() (*PaymentService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.FinancePayments)
	if !exist {
		return nil, fmt.Errorf("failed to get %s collection", global.MongoDB_ColNames.FinancePayments)
	}
	return &PaymentService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[financemodels.Payment](collection),
	}, nil
}

// TeamPaymentService xử lý logic cho khoản trả thành viên đội
type TeamPaymentService struct {
	*basesvc.BaseServiceMongoImpl[financemodels.TeamPayment]
}

// NewTeamPaymentService tạo mới TeamPaymentService
func NewTeamPaymentService() (*TeamPaymentService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.FinanceTeamPayments)
	if !exist {
		return nil, fmt.Errorf("failed to get %s collection", global.MongoDB_ColNames.FinanceTeamPayments)
	}
	return &TeamPaymentService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[financemodels.TeamPayment](collection),
	}, nil
}

// FinanceRecordService xử lý logic cho bút toán thu chi thủ công
type FinanceRecordService struct {
	*basesvc.BaseServiceMongoImpl[financemodels.FinanceRecord]
}

// NewFinanceRecordService tạo mới FinanceRecordService
func NewFinanceRecordService() (*FinanceRecordService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.FinanceRecords)
	if !exist {
		return nil, fmt.Errorf("failed to get %s collection", global.MongoDB_ColNames.FinanceRecords)
	}
	return &FinanceRecordService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[financemodels.FinanceRecord](collection),
	}, nil
}

// RecordExpense ghi một bút toán chi cho người nhận, tham chiếu tới thực thể nguồn.
func (s *FinanceRecordService) RecordExpense(ctx context.Context, recipientID primitive.ObjectID, recipientType string, amount float64, title string, refType string, refID primitive.ObjectID) (*financemodels.FinanceRecord, error) {
	now := time.Now().UnixMilli()
	record := financemodels.FinanceRecord{
		ID:            primitive.NewObjectID(),
		RecipientID:   recipientID,
		RecipientType: recipientType,
		EntryType:     financemodels.EntryTypeExpense,
		Direction:     financemodels.DirectionOut,
		Title:         title,
		Amount:        amount,
		Status:        financemodels.PayStatusUnpaid,
		RefType:       refType,
		RefID:         refID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	inserted, err := s.BaseServiceMongoImpl.InsertOne(ctx, record)
	if err != nil {
		return nil, err
	}
	return &inserted, nil
}

// RecordPayout ghi một bút toán chuyển tiền ra đã hoàn tất. Luôn ở trạng thái paid.
func (s *FinanceRecordService) RecordPayout(ctx context.Context, recipientID primitive.ObjectID, recipientType string, amount float64, title string) (*financemodels.FinanceRecord, error) {
	now := time.Now().UnixMilli()
	record := financemodels.FinanceRecord{
		ID:            primitive.NewObjectID(),
		RecipientID:   recipientID,
		RecipientType: recipientType,
		EntryType:     financemodels.EntryTypePayout,
		Direction:     financemodels.DirectionOut,
		Title:         title,
		Amount:        amount,
		Status:        financemodels.PayStatusPaid,
		PaidAt:        now,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	inserted, err := s.BaseServiceMongoImpl.InsertOne(ctx, record)
	if err != nil {
		return nil, err
	}
	return &inserted, nil
}
