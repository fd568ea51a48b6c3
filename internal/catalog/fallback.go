package catalog

import "freshcart/pkg/models"

// fallbackProducts is the bundled sample catalog served when the remote
// service is unreachable or returns nothing usable. It keeps the UI
// populated instead of surfacing a hard error.
var fallbackProducts = []models.Product{
	{
		ID:          "1",
		Title:       "Onion (Loose)",
		Brand:       "Fresho",
		Category:    "Fruits & Vegetables",
		Price:       156,
		MRP:         230.26,
		Weight:      "5 kg",
		Discount:    32,
		Image:       "https://upload.wikimedia.org/wikipedia/commons/thumb/9/93/Onion.jpg/300px-Onion.jpg",
		Thumbnail:   "https://upload.wikimedia.org/wikipedia/commons/thumb/9/93/Onion.jpg/150px-Onion.jpg",
		Description: "Fresh, crisp onions perfect for cooking. These onions are carefully selected and packed to maintain their quality and freshness. Great for all your culinary needs.",
		Benefits:    "High in antioxidants, great for cooking, freshly packed for maximum nutrition.",
		PricePerKg:  31.2,
	},
	{
		ID:          "2",
		Title:       "Fresho Potato, 2 kg",
		Brand:       "Fresho",
		Category:    "Fruits & Vegetables",
		Price:       59,
		MRP:         101.45,
		Weight:      "2 kg",
		Discount:    42,
		Image:       "https://images.unsplash.com/photo-1582515073490-39981397c445?w=300&h=300&fit=crop",
		Thumbnail:   "https://images.unsplash.com/photo-1582515073490-39981397c445?w=150&h=150&fit=crop",
		Description: "Soft, slightly sweet but creamy-textured potatoes from an early harvest, with thin tender skin that peels easily or can be cooked as-is. A great choice for roasting or boiling, rich in dietary fibre and carbohydrates.",
		Benefits:    "High in dietary fibre and carbohydrates, great for roasting or boiling, freshly picked for maximum nutrition.",
		PricePerKg:  29.5,
	},
	{
		ID:          "3",
		Title:       "Carrot - Orange (Loose)",
		Brand:       "Fresho",
		Category:    "Fruits & Vegetables",
		Price:       35,
		MRP:         67.76,
		Weight:      "1 kg",
		Discount:    48,
		Image:       "https://images.unsplash.com/photo-1445282768818-728615cc910a?w=300&h=300&fit=crop",
		Thumbnail:   "https://images.unsplash.com/photo-1445282768818-728615cc910a?w=150&h=150&fit=crop",
		Description: "Fresh, crunchy carrots rich in beta-carotene and vitamins. Perfect for salads, cooking, or snacking. These carrots are carefully selected for their sweetness and crispness.",
		Benefits:    "High in beta-carotene and vitamin A, great for eyesight, perfect for salads and cooking.",
		PricePerKg:  35,
	},
	{
		ID:          "4",
		Title:       "Tomato - Hybrid",
		Brand:       "Fresho",
		Category:    "Fresh Vegetables",
		Price:       48,
		MRP:         72,
		Weight:      "1 kg",
		Discount:    33,
		Image:       "https://images.unsplash.com/photo-1546094096-0df4bcaaa337?w=300&h=300&fit=crop",
		Thumbnail:   "https://images.unsplash.com/photo-1546094096-0df4bcaaa337?w=150&h=150&fit=crop",
		Description: "Juicy, ripe hybrid tomatoes ideal for curries, salads and sauces. Handpicked at peak ripeness for rich colour and flavour.",
		Benefits:    "Rich in lycopene and vitamin C. Supports heart health and immunity.",
		PricePerKg:  48,
	},
	{
		ID:          "5",
		Title:       "Banana - Robusta",
		Brand:       "Fresho",
		Category:    "Fresh Fruits",
		Price:       45,
		MRP:         60,
		Weight:      "1 kg",
		Discount:    25,
		Image:       "https://images.unsplash.com/photo-1571771894821-ce9b6c11b08e?w=300&h=300&fit=crop",
		Thumbnail:   "https://images.unsplash.com/photo-1571771894821-ce9b6c11b08e?w=150&h=150&fit=crop",
		Description: "Fresh, sweet bananas perfect for snacking or cooking. These robusta bananas are rich in potassium and other essential nutrients.",
		Benefits:    "High in potassium, vitamin B6, and vitamin C. Great for energy and heart health.",
		PricePerKg:  45,
	},
	{
		ID:          "6",
		Title:       "Apple - Red Delicious",
		Brand:       "Fresho",
		Category:    "Fresh Fruits",
		Price:       120,
		MRP:         150,
		Weight:      "1 kg",
		Discount:    20,
		Image:       "https://images.unsplash.com/photo-1567306226416-28f0efdc88ce?w=300&h=300&fit=crop",
		Thumbnail:   "https://images.unsplash.com/photo-1567306226416-28f0efdc88ce?w=150&h=150&fit=crop",
		Description: "Crisp, sweet red delicious apples perfect for snacking or baking. These apples are carefully selected for their quality and taste.",
		Benefits:    "High in fiber, vitamin C, and antioxidants. Great for digestion and immune system.",
		PricePerKg:  120,
	},
	{
		ID:          "7",
		Title:       "Spinach - Fresh",
		Brand:       "Fresho",
		Category:    "Leafy Vegetables",
		Price:       25,
		MRP:         35,
		Weight:      "250 g",
		Discount:    29,
		Image:       "https://images.unsplash.com/photo-1576045057995-568f588f82fb?w=300&h=300&fit=crop",
		Thumbnail:   "https://images.unsplash.com/photo-1576045057995-568f588f82fb?w=150&h=150&fit=crop",
		Description: "Fresh, tender spinach leaves perfect for salads, smoothies, or cooking. Rich in iron and other essential nutrients.",
		Benefits:    "High in iron, folate, and vitamin K. Great for blood health and bone strength.",
		PricePerKg:  100,
	},
	{
		ID:          "8",
		Title:       "Capsicum - Green",
		Brand:       "Fresho",
		Category:    "Fresh Vegetables",
		Price:       40,
		MRP:         55,
		Weight:      "500 g",
		Discount:    27,
		Image:       "https://images.unsplash.com/photo-1566385101042-1a0aa0c1268c?w=300&h=300&fit=crop",
		Thumbnail:   "https://images.unsplash.com/photo-1566385101042-1a0aa0c1268c?w=150&h=150&fit=crop",
		Description: "Fresh, crisp green capsicum perfect for stir-fries, salads, and stuffing. These capsicums are carefully selected for their quality.",
		Benefits:    "High in vitamin C and antioxidants. Great for immune system and skin health.",
		PricePerKg:  80,
	},
	{
		ID:          "9",
		Title:       "Nandini Toned Milk",
		Brand:       "Nandini",
		Category:    "Dairy",
		Price:       24,
		MRP:         26,
		Weight:      "500 ml",
		Discount:    8,
		Image:       "https://images.unsplash.com/photo-1550583724-b2692b85b150?w=300&h=300&fit=crop",
		Thumbnail:   "https://images.unsplash.com/photo-1550583724-b2692b85b150?w=150&h=150&fit=crop",
		Description: "Fresh toned milk, pasteurised and packed hygienically. A daily essential for tea, coffee and cooking.",
		Benefits:    "Good source of calcium and protein. Supports bone health.",
		PricePerKg:  48,
	},
	{
		ID:          "10",
		Title:       "Broccoli - Fresh",
		Brand:       "Fresho",
		Category:    "Fresh Vegetables",
		Price:       60,
		MRP:         80,
		Weight:      "500 g",
		Discount:    25,
		Image:       "https://images.unsplash.com/photo-1459411621453-7b03977f4bfc?w=300&h=300&fit=crop",
		Thumbnail:   "https://images.unsplash.com/photo-1459411621453-7b03977f4bfc?w=150&h=150&fit=crop",
		Description: "Fresh, green broccoli perfect for stir-fries, soups, or steaming. Rich in vitamins and minerals.",
		Benefits:    "High in vitamin C, vitamin K, and folate. Great for bone health and immune system.",
		PricePerKg:  120,
	},
	{
		ID:          "11",
		Title:       "Orange - Navel",
		Brand:       "Fresho",
		Category:    "Fresh Fruits",
		Price:       80,
		MRP:         100,
		Weight:      "1 kg",
		Discount:    20,
		Image:       "https://images.unsplash.com/photo-1547036967-23d11aacaee0?w=300&h=300&fit=crop",
		Thumbnail:   "https://images.unsplash.com/photo-1547036967-23d11aacaee0?w=150&h=150&fit=crop",
		Description: "Sweet, juicy navel oranges perfect for eating fresh or making juice. These oranges are rich in vitamin C.",
		Benefits:    "High in vitamin C and fiber. Great for immune system and digestion.",
		PricePerKg:  80,
	},
	{
		ID:          "12",
		Title:       "Cucumber - English",
		Brand:       "Fresho",
		Category:    "Fresh Vegetables",
		Price:       30,
		MRP:         40,
		Weight:      "500 g",
		Discount:    25,
		Image:       "https://images.unsplash.com/photo-1449300079323-02e209d9d3a6?w=300&h=300&fit=crop",
		Thumbnail:   "https://images.unsplash.com/photo-1449300079323-02e209d9d3a6?w=150&h=150&fit=crop",
		Description: "Fresh, crisp English cucumbers perfect for salads and snacking. These cucumbers are seedless and have a mild taste.",
		Benefits:    "High in water content and vitamin K. Great for hydration and bone health.",
		PricePerKg:  60,
	},
}

// FallbackProducts returns a copy of the bundled sample catalog.
func FallbackProducts() []models.Product {
	out := make([]models.Product, len(fallbackProducts))
	copy(out, fallbackProducts)
	return out
}
