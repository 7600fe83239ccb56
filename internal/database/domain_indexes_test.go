// Package database - Test khớp index nghiệp vụ với bson tag của model.
package database

import (
	"reflect"
	"strings"
	"testing"

	contentmodels "creator_panel/internal/api/content/models"
	financemodels "creator_panel/internal/api/finance/models"
	voiceovermodels "creator_panel/internal/api/voiceover/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

// bsonFields thu thập tên field bson của một model qua reflection.
func bsonFields(model interface{}) map[string]bool {
	fields := map[string]bool{"_id": true}
	t := reflect.TypeOf(model)
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("bson")
		if tag == "" || tag == "-" {
			continue
		}
		fields[strings.Split(tag, ",")[0]] = true
	}
	return fields
}

func specByName(t *testing.T, name string) domainIndex {
	t.Helper()
	for _, spec := range domainIndexSpecs() {
		if spec.Name == name {
			return spec
		}
	}
	t.Fatalf("không tìm thấy index spec %q", name)
	return domainIndex{}
}

func assertKeysMatchModel(t *testing.T, keys bson.D, model interface{}) {
	t.Helper()
	fields := bsonFields(model)
	for _, key := range keys {
		assert.True(t, fields[key.Key],
			"key index %q không tồn tại trong bson tag của model %T", key.Key, model)
	}
}

func TestDomainIndexSpecs_PaymentTheoNguoiNhan(t *testing.T) {
	spec := specByName(t, "finance_payment_recipient")
	assertKeysMatchModel(t, spec.Keys, financemodels.Payment{})

	keyNames := make([]string, 0, len(spec.Keys))
	for _, k := range spec.Keys {
		keyNames = append(keyNames, k.Key)
	}
	assert.Equal(t, []string{"recipientType", "recipientId", "createdAt"}, keyNames,
		"index payments phải đi theo recipientType/recipientId, không phải streamerId")
}

func TestDomainIndexSpecs_TeamPaymentTheoThanhVien(t *testing.T) {
	spec := specByName(t, "finance_team_payment_member")
	assertKeysMatchModel(t, spec.Keys, financemodels.TeamPayment{})
	assert.Equal(t, "teamMemberId", spec.Keys[0].Key)
}

func TestDomainIndexSpecs_MoiKeyDeuKhopModel(t *testing.T) {
	models := map[string]interface{}{
		"editpack_token_unique":       voiceovermodels.EditPack{},
		"editpack_voiceover_unique":   voiceovermodels.EditPack{},
		"voiceover_status_created":    voiceovermodels.VoiceScript{},
		"voiceover_actor_status":      voiceovermodels.VoiceScript{},
		"finance_record_recipient":    financemodels.FinanceRecord{},
		"finance_payment_recipient":   financemodels.Payment{},
		"finance_team_payment_member": financemodels.TeamPayment{},
		"content_status_updated":      contentmodels.ContentItem{},
	}
	for _, spec := range domainIndexSpecs() {
		model, ok := models[spec.Name]
		if !ok {
			continue
		}
		assertKeysMatchModel(t, spec.Keys, model)
	}
}
