package main

import "github.com/shopfront/admin-api/internal/core/domain"

var sampleProducts = []domain.Product{
	{
		Name:        "iPhone 15 Pro",
		Price:       999,
		Description: "The latest flagship smartphone from Apple with titanium design, A17 Pro chip, and advanced camera system.",
		Image:       "https://images.unsplash.com/photo-1696446701796-da61225697cc?w=500&q=80",
	},
	{
		Name:        "MacBook Air M3",
		Price:       1199,
		Description: "13-inch laptop with M3 chip, stunning Retina display, and up to 18 hours of battery life.",
		Image:       "https://images.unsplash.com/photo-1517336714731-489689fd1ca8?w=500&q=80",
	},
	{
		Name:        "AirPods Pro",
		Price:       249,
		Description: "Active Noise Cancellation, Adaptive Audio, and personalized Spatial Audio for immersive listening.",
		Image:       "https://images.unsplash.com/photo-1606841837239-c5a1a4a07af7?w=500&q=80",
	},
	{
		Name:        "Apple Watch Series 9",
		Price:       429,
		Description: "Advanced health features, fitness tracking, and always-on Retina display.",
		Image:       "https://images.unsplash.com/photo-1579586337278-3befd40fd17a?w=500&q=80",
	},
	{
		Name:        `iPad Pro 12.9"`,
		Price:       1099,
		Description: "M2 chip, Liquid Retina XDR display, and support for Apple Pencil and Magic Keyboard.",
		Image:       "https://images.unsplash.com/photo-1544244015-0df4b3ffc6b0?w=500&q=80",
	},
	{
		Name:        "Sony WH-1000XM5",
		Price:       399,
		Description: "Industry-leading noise canceling headphones with exceptional sound quality and 30-hour battery life.",
		Image:       "https://images.unsplash.com/photo-1546435770-a3e426bf472b?w=500&q=80",
	},
	{
		Name:        "Samsung Galaxy S24 Ultra",
		Price:       1199,
		Description: "Premium Android smartphone with S Pen, 200MP camera, and stunning AMOLED display.",
		Image:       "https://images.unsplash.com/photo-1610945415295-d9bbf067e59c?w=500&q=80",
	},
	{
		Name:        "Dell XPS 15",
		Price:       1799,
		Description: "Powerful laptop with Intel Core i9, NVIDIA RTX graphics, and stunning 4K OLED display.",
		Image:       "https://images.unsplash.com/photo-1593642632823-8f785ba67e45?w=500&q=80",
	},
	{
		Name:        "PlayStation 5",
		Price:       499,
		Description: "Next-gen gaming console with ultra-high-speed SSD, ray tracing, and 4K gaming.",
		Image:       "https://images.unsplash.com/photo-1606813907291-d86efa9b94db?w=500&q=80",
	},
	{
		Name:        "Bose QuietComfort Earbuds II",
		Price:       299,
		Description: "Premium wireless earbuds with personalized noise cancellation and high-fidelity audio.",
		Image:       "https://images.unsplash.com/photo-1590658268037-6bf12165a8df?w=500&q=80",
	},
}
