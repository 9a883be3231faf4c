package common

// Demo account seeded by bootstrap.
const (
	DemoLogin     = "demo"
	DemoFirstName = "Иван"
	DemoLastName  = "Иванов"
	DemoPassword  = "demo123"
)
