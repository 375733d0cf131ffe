package seed

import (
	"Savora-Admin/domain"
	"Savora-Admin/entities"
	"Savora-Admin/pkg/inventory"
	"encoding/json"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed wipes the tables and loads the demo dataset. Intended for local
// development only.
func Seed(db *gorm.DB) error {
	tables := []interface{}{
		&entities.GroceryItem{},
		&entities.Recipe{},
		&entities.InventoryItem{},
		&entities.PlanTransaction{},
		&entities.User{},
	}
	for _, table := range tables {
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(table).Error; err != nil {
			return err
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("demo123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	adminUser := entities.User{
		Name:     "Admin User",
		Email:    "admin@savora.com",
		Password: string(hashed),
		Role:     domain.RoleAdmin,
		Plan:     domain.PlanPremium,
		Status:   "Active",
	}
	demoUser := entities.User{
		Name:     "Demo User",
		Email:    "demo@savora.com",
		Password: string(hashed),
		Role:     domain.RoleUser,
		Plan:     domain.PlanFree,
		Status:   "Active",
	}
	if err := db.Create(&adminUser).Error; err != nil {
		return err
	}
	if err := db.Create(&demoUser).Error; err != nil {
		return err
	}

	now := time.Now()
	items := []struct {
		name, category, qty, expiry, location string
	}{
		{"Chicken Breast", "Meat", "500g", "2026-02-05", "Fridge"},
		{"Eggs", "Dairy", "12 pcs", "2026-02-10", "Fridge"},
		{"Milk", "Dairy", "1L", "2026-02-03", "Fridge"},
		{"Rice", "Grains", "2kg", "2026-06-15", "Pantry"},
		{"Tomatoes", "Vegetables", "6 pcs", "2026-02-02", "Fridge"},
		{"Onions", "Vegetables", "1kg", "2026-02-20", "Pantry"},
		{"Garlic", "Vegetables", "200g", "2026-02-25", "Pantry"},
		{"Olive Oil", "Oils", "500ml", "2026-12-01", "Pantry"},
		{"Pasta", "Grains", "500g", "2026-08-15", "Pantry"},
		{"Cheese", "Dairy", "250g", "2026-02-08", "Fridge"},
	}
	for _, it := range items {
		expiry, err := time.Parse("2006-01-02", it.expiry)
		if err != nil {
			return err
		}
		item := entities.InventoryItem{
			UserID:   adminUser.ID,
			Name:     it.name,
			Category: it.category,
			Quantity: it.qty,
			Expiry:   &expiry,
			Status:   inventory.ClassifyExpiry(&expiry, now),
			Location: it.location,
		}
		if err := db.Create(&item).Error; err != nil {
			return err
		}
	}

	recipes := []struct {
		title, cuisine string
		prepTime       int
		calories       int
		imageURL       string
		ingredients    []string
		instructions   string
	}{
		{
			"Chicken Stir Fry", "Asian", 30, 450,
			"https://images.unsplash.com/photo-1603133872878-684f208fb84b?w=400",
			[]string{"Chicken Breast", "Garlic", "Onions", "Soy Sauce", "Vegetables"},
			"1. Cut chicken into strips. 2. Sauté garlic and onions. 3. Add chicken and cook until done. 4. Add vegetables and soy sauce. 5. Serve hot with rice.",
		},
		{
			"Pasta Carbonara", "Italian", 25, 650,
			"https://images.unsplash.com/photo-1612874742237-6526221588e3?w=400",
			[]string{"Pasta", "Eggs", "Cheese", "Bacon", "Garlic"},
			"1. Cook pasta al dente. 2. Fry bacon until crispy. 3. Mix eggs with cheese. 4. Combine hot pasta with egg mixture. 5. Add bacon and serve.",
		},
		{
			"Tomato Rice", "Indian", 35, 380,
			"https://images.unsplash.com/photo-1596560548464-f010549b84d7?w=400",
			[]string{"Rice", "Tomatoes", "Onions", "Garlic", "Spices"},
			"1. Sauté onions and garlic. 2. Add chopped tomatoes. 3. Add rice and water. 4. Cook until rice is done. 5. Garnish and serve.",
		},
		{
			"Omelette", "French", 10, 280,
			"https://images.unsplash.com/photo-1510693206972-df098062cb71?w=400",
			[]string{"Eggs", "Cheese", "Milk", "Salt", "Pepper"},
			"1. Beat eggs with milk, salt, pepper. 2. Heat butter in pan. 3. Pour egg mixture. 4. Add cheese. 5. Fold and serve.",
		},
	}
	for _, r := range recipes {
		encoded, err := json.Marshal(r.ingredients)
		if err != nil {
			return err
		}
		recipe := entities.Recipe{
			UserID:          adminUser.ID,
			Title:           r.title,
			Cuisine:         r.cuisine,
			PrepTimeMinutes: r.prepTime,
			Calories:        r.calories,
			ImageURL:        r.imageURL,
			Ingredients:     string(encoded),
			Instructions:    r.instructions,
		}
		if err := db.Create(&recipe).Error; err != nil {
			return err
		}
	}

	groceries := []struct {
		name, category string
		isBought       bool
		price          float64
	}{
		{"Bread", "Bakery", false, 2.50},
		{"Butter", "Dairy", false, 4.00},
		{"Apples", "Fruits", true, 3.50},
		{"Orange Juice", "Beverages", false, 5.00},
		{"Yogurt", "Dairy", false, 3.00},
		{"Bananas", "Fruits", true, 2.00},
	}
	for _, g := range groceries {
		price := g.price
		item := entities.GroceryItem{
			UserID:   adminUser.ID,
			Name:     g.name,
			Category: g.category,
			IsBought: g.isBought,
			Price:    &price,
		}
		if err := db.Create(&item).Error; err != nil {
			return err
		}
	}

	fmt.Println("Database seeded: admin@savora.com / demo@savora.com (password demo123)")
	return nil
}
