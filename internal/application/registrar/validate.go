package registrar

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Granja-api/internal/application/dto"
	"github.com/jhoicas/Granja-api/internal/domain"
	"github.com/jhoicas/Granja-api/internal/domain/entity"
)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, fmt.Sprintf(format, args...))
}

func blank(s string) bool { return strings.TrimSpace(s) == "" }

func ValidateBreeding(in dto.CreateBreedingRequest) error {
	switch {
	case blank(in.MaleGoatID) || blank(in.FemaleGoatID):
		return invalid("maleGoatId y femaleGoatId son obligatorios")
	case in.MaleGoatID == in.FemaleGoatID:
		return invalid("macho y hembra deben ser animales distintos")
	case in.BreedingDate.IsZero():
		return invalid("breedingDate es obligatorio")
	case in.BreedingMethod != "" && !entity.ValidBreedingMethod(in.BreedingMethod):
		return invalid("breedingMethod debe ser Natural o AI")
	case in.KidsBorn != nil && *in.KidsBorn < 0:
		return invalid("kidsBorn no puede ser negativo")
	case in.ActualKidDate != nil && !in.ActualKidDate.IsZero() && in.ActualKidDate.Before(in.BreedingDate.Time):
		return invalid("actualKidDate no puede ser anterior a breedingDate")
	}
	return nil
}

func ValidateHealth(in dto.CreateHealthRequest) error {
	switch {
	case blank(in.GoatID):
		return invalid("goatId es obligatorio")
	case in.Date.IsZero():
		return invalid("date es obligatorio")
	case !entity.ValidHealthRecordType(in.RecordType):
		return invalid("recordType debe ser Vaccination, Deworming, Treatment o Checkup")
	case in.Cost != nil && in.Cost.IsNegative():
		return invalid("cost no puede ser negativo")
	}
	return nil
}

func ValidateExpense(in dto.CreateExpenseRequest) error {
	switch {
	case in.Date.IsZero():
		return invalid("date es obligatorio")
	case blank(in.Category):
		return invalid("category es obligatorio")
	case !in.Amount.GreaterThan(decimal.Zero):
		return invalid("amount debe ser mayor que cero")
	}
	return nil
}

func ValidateSale(in dto.CreateSaleRequest) error {
	switch {
	case blank(in.GoatID):
		return invalid("goatId es obligatorio")
	case in.SaleDate.IsZero():
		return invalid("saleDate es obligatorio")
	case blank(in.BuyerName):
		return invalid("buyerName es obligatorio")
	case !in.SalePrice.GreaterThan(decimal.Zero):
		return invalid("salePrice debe ser mayor que cero")
	case in.Weight != nil && in.Weight.IsNegative():
		return invalid("weight no puede ser negativo")
	}
	return nil
}

func ValidateInventory(in dto.CreateInventoryRequest) error {
	switch {
	case blank(in.ItemName):
		return invalid("itemName es obligatorio")
	case blank(in.Category):
		return invalid("category es obligatorio")
	case blank(in.Unit):
		return invalid("unit es obligatorio")
	case in.Quantity.IsNegative():
		return invalid("quantity no puede ser negativo")
	case in.MinStock.IsNegative():
		return invalid("minStock no puede ser negativo")
	case in.UnitPrice != nil && in.UnitPrice.IsNegative():
		return invalid("unitPrice no puede ser negativo")
	}
	return nil
}
