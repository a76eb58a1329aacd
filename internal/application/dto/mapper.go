package dto

import (
	"time"

	"github.com/jhoicas/Granja-api/internal/domain/entity"
)

// Conversión entidad -> DTO de salida. Las listas nunca se serializan como null.

func FromUser(u *entity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func FromGoat(g *entity.Goat, now time.Time) GoatResponse {
	return GoatResponse{
		ID:            g.ID,
		TagNo:         g.TagNo,
		Name:          g.Name,
		Breed:         g.Breed,
		Gender:        g.Gender,
		DateOfBirth:   NewDate(g.DateOfBirth),
		AgeMonths:     g.AgeInMonths(now),
		Weight:        g.Weight,
		Purpose:       g.Purpose,
		Source:        g.Source,
		PurchasePrice: g.PurchasePrice,
		PurchaseDate:  DatePtr(g.PurchaseDate),
		SireID:        g.SireID,
		DamID:         g.DamID,
		Status:        g.Status,
		Notes:         g.Notes,
		CreatedBy:     g.CreatedBy,
		CreatedAt:     g.CreatedAt,
		UpdatedAt:     g.UpdatedAt,
	}
}

func FromGoats(goats []*entity.Goat, now time.Time) []GoatResponse {
	out := make([]GoatResponse, 0, len(goats))
	for _, g := range goats {
		out = append(out, FromGoat(g, now))
	}
	return out
}

func goatRef(g *entity.Goat) *GoatRefDTO {
	if g == nil {
		return nil
	}
	return &GoatRefDTO{ID: g.ID, TagNo: g.TagNo, Name: g.Name, Breed: g.Breed}
}

func fromRef(r *entity.GoatRef) *GoatRefDTO {
	if r == nil {
		return nil
	}
	return &GoatRefDTO{ID: r.ID, TagNo: r.TagNo, Name: r.Name, Breed: r.Breed}
}

// FromGoatDetail arma la ficha completa del animal.
func FromGoatDetail(d *entity.GoatDetail, now time.Time) GoatDetailResponse {
	offspring := make([]GoatRefDTO, 0, len(d.Offspring))
	for _, o := range d.Offspring {
		offspring = append(offspring, *goatRef(o))
	}
	return GoatDetailResponse{
		GoatResponse:     FromGoat(d.Goat, now),
		Sire:             goatRef(d.Sire),
		Dam:              goatRef(d.Dam),
		Offspring:        offspring,
		HealthRecords:    FromHealthRecords(d.HealthRecords),
		WeightRecords:    FromWeightRecords(d.WeightRecords),
		BreedingAsMale:   FromBreedingRecords(d.BreedingAsMale),
		BreedingAsFemale: FromBreedingRecords(d.BreedingAsFemale),
	}
}

func FromWeightRecord(w *entity.WeightRecord) WeightRecordResponse {
	return WeightRecordResponse{
		ID:        w.ID,
		GoatID:    w.GoatID,
		Date:      NewDate(w.Date),
		Weight:    w.Weight,
		Notes:     w.Notes,
		CreatedBy: w.CreatedBy,
		CreatedAt: w.CreatedAt,
	}
}

func FromWeightRecords(recs []*entity.WeightRecord) []WeightRecordResponse {
	out := make([]WeightRecordResponse, 0, len(recs))
	for _, r := range recs {
		out = append(out, FromWeightRecord(r))
	}
	return out
}

func FromBreedingRecord(b *entity.BreedingRecord) BreedingRecordResponse {
	return BreedingRecordResponse{
		ID:              b.ID,
		ReferenceNo:     b.ReferenceNo,
		MaleGoatID:      b.MaleGoatID,
		FemaleGoatID:    b.FemaleGoatID,
		MaleGoat:        fromRef(b.MaleGoat),
		FemaleGoat:      fromRef(b.FemaleGoat),
		BreedingDate:    NewDate(b.BreedingDate),
		BreedingMethod:  b.BreedingMethod,
		ExpectedKidDate: NewDate(b.ExpectedKidDate),
		ActualKidDate:   DatePtr(b.ActualKidDate),
		KidsBorn:        b.KidsBorn,
		Notes:           b.Notes,
		CreatedBy:       b.CreatedBy,
		CreatedAt:       b.CreatedAt,
	}
}

func FromBreedingRecords(recs []*entity.BreedingRecord) []BreedingRecordResponse {
	out := make([]BreedingRecordResponse, 0, len(recs))
	for _, r := range recs {
		out = append(out, FromBreedingRecord(r))
	}
	return out
}

func FromHealthRecord(h *entity.HealthRecord) HealthRecordResponse {
	return HealthRecordResponse{
		ID:          h.ID,
		ReferenceNo: h.ReferenceNo,
		GoatID:      h.GoatID,
		Goat:        fromRef(h.Goat),
		Date:        NewDate(h.Date),
		RecordType:  h.RecordType,
		Description: h.Description,
		Medicine:    h.Medicine,
		Dosage:      h.Dosage,
		VetName:     h.VetName,
		Cost:        h.Cost,
		NextDueDate: DatePtr(h.NextDueDate),
		Notes:       h.Notes,
		CreatedBy:   h.CreatedBy,
		CreatedAt:   h.CreatedAt,
	}
}

func FromHealthRecords(recs []*entity.HealthRecord) []HealthRecordResponse {
	out := make([]HealthRecordResponse, 0, len(recs))
	for _, r := range recs {
		out = append(out, FromHealthRecord(r))
	}
	return out
}

func FromExpense(e *entity.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          e.ID,
		ReferenceNo: e.ReferenceNo,
		Date:        NewDate(e.Date),
		Category:    e.Category,
		Description: e.Description,
		Amount:      e.Amount,
		PaymentMode: e.PaymentMode,
		VendorName:  e.VendorName,
		Notes:       e.Notes,
		CreatedBy:   e.CreatedBy,
		CreatedAt:   e.CreatedAt,
	}
}

func FromExpenses(recs []*entity.Expense) []ExpenseResponse {
	out := make([]ExpenseResponse, 0, len(recs))
	for _, r := range recs {
		out = append(out, FromExpense(r))
	}
	return out
}

func FromSale(s *entity.SaleRecord) SaleResponse {
	return SaleResponse{
		ID:           s.ID,
		ReferenceNo:  s.ReferenceNo,
		GoatID:       s.GoatID,
		Goat:         fromRef(s.Goat),
		SaleDate:     NewDate(s.SaleDate),
		BuyerName:    s.BuyerName,
		BuyerContact: s.BuyerContact,
		SalePrice:    s.SalePrice,
		Weight:       s.Weight,
		PaymentMode:  s.PaymentMode,
		Notes:        s.Notes,
		CreatedBy:    s.CreatedBy,
		CreatedAt:    s.CreatedAt,
	}
}

func FromSales(recs []*entity.SaleRecord) []SaleResponse {
	out := make([]SaleResponse, 0, len(recs))
	for _, r := range recs {
		out = append(out, FromSale(r))
	}
	return out
}

func FromInventoryItem(i *entity.InventoryItem) InventoryItemResponse {
	return InventoryItemResponse{
		ID:            i.ID,
		ReferenceNo:   i.ReferenceNo,
		ItemName:      i.ItemName,
		Category:      i.Category,
		Quantity:      i.Quantity,
		Unit:          i.Unit,
		MinStock:      i.MinStock,
		UnitPrice:     i.UnitPrice,
		Supplier:      i.Supplier,
		LastRestocked: DatePtr(i.LastRestocked),
		ExpiryDate:    DatePtr(i.ExpiryDate),
		LowStock:      i.IsLowStock(),
		Notes:         i.Notes,
		CreatedBy:     i.CreatedBy,
		CreatedAt:     i.CreatedAt,
		UpdatedAt:     i.UpdatedAt,
	}
}

func FromInventoryItems(items []*entity.InventoryItem) []InventoryItemResponse {
	out := make([]InventoryItemResponse, 0, len(items))
	for _, i := range items {
		out = append(out, FromInventoryItem(i))
	}
	return out
}
