package repository

// Repos repositorios atados a una misma transacción. Los TxRunner de infraestructura lo construyen
// en cada Run; fuera de una transacción cada repositorio opera en autocommit.
type Repos struct {
	Counters  ReferenceCounterRepository
	Goats     GoatRepository
	Weights   WeightRecordRepository
	Breeding  BreedingRepository
	Health    HealthRepository
	Expenses  ExpenseRepository
	Sales     SaleRepository
	Inventory InventoryRepository
}
