// internal/domain/product/fixtures.go
package product

// Fixture catalog used whenever the backing store is unreachable or empty,
// so catalog browsing never hard-fails.

// FixtureProducts returns the fallback product set
func FixtureProducts() []Product {
	return []Product{
		{
			ID:            "1",
			NameAr:        "بانادول ادفانس ٥٠٠ ملجم",
			NameEn:        "Panadol Advance 500mg",
			Price:         1250,
			OldPrice:      1500,
			ImageURL:      "https://images.unsplash.com/photo-1584308666744-24d5c474f2ae?q=80&w=800&fit=crop",
			Category:      "Medicines",
			BrandEn:       "Panadol",
			StockQuantity: 50,
			TrackQuantity: true,
			IsNew:         true,
			IsFeatured:    true,
		},
		{
			ID:            "2",
			NameAr:        "فيتامين سي سيروم",
			NameEn:        "Vitamin C Serum",
			Price:         8500,
			ImageURL:      "https://images.unsplash.com/photo-1612277795421-9bc7706a4a34?q=80&w=800&fit=crop",
			Category:      "Skin Care",
			BrandEn:       "Vichy",
			StockQuantity: 12,
			TrackQuantity: true,
			IsNew:         true,
		},
		{
			ID:            "3",
			NameAr:        "شامبو اطفال ٥٠٠ مل",
			NameEn:        "Baby Shampoo 500ml",
			Price:         4500,
			ImageURL:      "https://images.unsplash.com/photo-1515488764276-beab7607c1e6?q=80&w=800&fit=crop",
			Category:      "Baby Care",
			BrandEn:       "Johnson's",
			StockQuantity: 25,
			TrackQuantity: true,
			IsFeatured:    true,
		},
		{
			ID:            "4",
			NameAr:        "فوليك اسيد ٥ ملجم",
			NameEn:        "Folic Acid 5mg",
			Price:         1800,
			ImageURL:      "https://images.unsplash.com/photo-1471864190281-ad5fe9bb0720?q=80&w=800&fit=crop",
			Category:      "Vitamins",
			BrandEn:       "Solgar",
			StockQuantity: 100,
			TrackQuantity: true,
			IsNew:         true,
		},
	}
}

// FixtureCategories returns the storefront navigation tree
func FixtureCategories() []Category {
	return []Category{
		{
			ID: "fragrances", NameAr: "العطور", NameEn: "Fragrances", SortOrder: 1, IsActive: true,
			SubCategories: []SubCategory{
				{NameAr: "عطور الرجال", NameEn: "Men Fragrances", Href: "/products?category=Fragrances&sub=Men"},
				{NameAr: "عطور النساء", NameEn: "Women Fragrances", Href: "/products?category=Fragrances&sub=Women"},
				{NameAr: "عطور الأطفال", NameEn: "Kids Fragrances", Href: "/products?category=Fragrances&sub=Kids"},
			},
		},
		{
			ID: "makeup", NameAr: "المكياج", NameEn: "Makeup", SortOrder: 2, IsActive: true,
			SubCategories: []SubCategory{
				{NameAr: "أحمر الشفاه", NameEn: "Lipstick", Href: "/products?category=Skin Care&sub=Lipstick"},
				{NameAr: "مكياج العين", NameEn: "Eye Makeup", Href: "/products?category=Skin Care&sub=Eye"},
				{NameAr: "مكياج الوجه", NameEn: "Face Makeup", Href: "/products?category=Skin Care&sub=Face"},
				{NameAr: "طلاء الأظافر", NameEn: "Nail Colors", Href: "/products?category=Skin Care&sub=Nails"},
				{NameAr: "رموش صناعية", NameEn: "Eye Lashes", Href: "/products?category=Skin Care&sub=Lashes"},
				{NameAr: "عدسات لاصقة", NameEn: "Contact Lenses", Href: "/products?category=Skin Care&sub=Lenses"},
				{NameAr: "أدوات المكياج", NameEn: "Makeup Tools", Href: "/products?category=Skin Care&sub=Tools"},
				{NameAr: "أقراط", NameEn: "Earrings", Href: "/products?category=Skin Care&sub=Earrings"},
				{NameAr: "اكسسوارات التجميل", NameEn: "Beauty Accessories", Href: "/products?category=Skin Care&sub=Accessories"},
			},
		},
		{
			ID: "baby-care", NameAr: "عناية الطفل وحفاضات", NameEn: "Baby Care & Diapers", SortOrder: 3, IsActive: true,
			SubCategories: []SubCategory{
				{NameAr: "حفاضات", NameEn: "Diapers", Href: "/products?category=Baby Care&sub=Diapers"},
				{NameAr: "مناديل مبللة", NameEn: "Wipes", Href: "/products?category=Baby Care&sub=Wipes"},
				{NameAr: "عناية ببشرة الطفل", NameEn: "Baby Skin Care", Href: "/products?category=Baby Care&sub=Skin"},
			},
		},
		{
			ID: "vitamins", NameAr: "الفيتامينات", NameEn: "Vitamins", SortOrder: 4, IsActive: true,
			SubCategories: []SubCategory{
				{NameAr: "فيتامينات متعددة", NameEn: "Multivitamins", Href: "/products?category=Vitamins&sub=Multi"},
				{NameAr: "مقويات المناعة", NameEn: "Immunity Boosters", Href: "/products?category=Vitamins&sub=Immunity"},
				{NameAr: "معادن", NameEn: "Minerals", Href: "/products?category=Vitamins&sub=Minerals"},
			},
		},
		{
			ID: "skin-care", NameAr: "عناية بالبشرة", NameEn: "Skin Care", SortOrder: 5, IsActive: true,
			SubCategories: []SubCategory{
				{NameAr: "منظفات الوجه", NameEn: "Face Cleansers", Href: "/products?category=Skin Care&sub=Cleansers"},
				{NameAr: "مرطبات", NameEn: "Moisturizers", Href: "/products?category=Skin Care&sub=Moisturizers"},
				{NameAr: "واقي شمس", NameEn: "Sunscreen", Href: "/products?category=Skin Care&sub=Sunscreen"},
			},
		},
		{
			ID: "baby-accessories", NameAr: "اكسسوارات الطفل", NameEn: "Baby Accessories", SortOrder: 6, IsActive: true,
			SubCategories: []SubCategory{
				{NameAr: "رضاعات", NameEn: "Feeding Bottles", Href: "/products?category=Baby Care&sub=Bottles"},
				{NameAr: "لهايات", NameEn: "Pacifiers", Href: "/products?category=Baby Care&sub=Pacifiers"},
			},
		},
		{
			ID: "hair-care", NameAr: "عناية بالشعر", NameEn: "Hair Care", SortOrder: 7, IsActive: true,
			SubCategories: []SubCategory{
				{NameAr: "شامبو", NameEn: "Shampoo", Href: "/products?category=Personal Care&sub=Shampoo"},
				{NameAr: "بلسم", NameEn: "Conditioner", Href: "/products?category=Personal Care&sub=Conditioner"},
				{NameAr: "صبغة شعر", NameEn: "Hair Color", Href: "/products?category=Personal Care&sub=Color"},
			},
		},
		{
			ID: "personal-care", NameAr: "العناية الشخصية", NameEn: "Personal Care", SortOrder: 8, IsActive: true,
			SubCategories: []SubCategory{
				{NameAr: "عناية بالفم", NameEn: "Oral Care", Href: "/products?category=Personal Care&sub=Oral"},
				{NameAr: "مزيلات عرق", NameEn: "Deodorants", Href: "/products?category=Personal Care&sub=Deo"},
				{NameAr: "عناية بالجسم", NameEn: "Body Care", Href: "/products?category=Personal Care&sub=Body"},
			},
		},
		{
			ID: "baby-milk", NameAr: "حليب وطعام الطفل", NameEn: "Baby Milk & Food", SortOrder: 9, IsActive: true,
			SubCategories: []SubCategory{
				{NameAr: "حليب صناعي", NameEn: "Baby Formula", Href: "/products?category=Baby care&sub=Formula"},
				{NameAr: "طعام أطفال", NameEn: "Baby Food", Href: "/products?category=Baby care&sub=Food"},
			},
		},
		{
			ID: "sport-nutrition", NameAr: "تغذية رياضية", NameEn: "Sport Nutrition", SortOrder: 10, IsActive: true,
			SubCategories: []SubCategory{
				{NameAr: "بروتين", NameEn: "Protein", Href: "/products?category=Vitamins&sub=Protein"},
				{NameAr: "أحماض أمينية", NameEn: "Amino Acids", Href: "/products?category=Vitamins&sub=Amino"},
			},
		},
		{
			ID: "healthy-devices", NameAr: "أجهزة صحية", NameEn: "Healthy Devices", SortOrder: 11, IsActive: true,
			SubCategories: []SubCategory{
				{NameAr: "أجهزة ضغط", NameEn: "Blood Pressure", Href: "/products?category=Medical Equipment&sub=Pressure"},
				{NameAr: "أجهزة سكر", NameEn: "Glucose Monitors", Href: "/products?category=Medical Equipment&sub=Glucose"},
			},
		},
		{
			ID: "healthy-nutrition", NameAr: "تغذية صحية", NameEn: "Healthy Nutrition", SortOrder: 12, IsActive: true,
			SubCategories: []SubCategory{
				{NameAr: "أغذية عضوية", NameEn: "Organic Food", Href: "/products?category=Vitamins&sub=Organic"},
				{NameAr: "بدائل سكر", NameEn: "Sugar Substitutes", Href: "/products?category=Vitamins&sub=Sugar"},
			},
		},
		{
			ID: "home-care", NameAr: "رعاية صحية منزلية", NameEn: "Home Health Care", SortOrder: 13, IsActive: true,
			SubCategories: []SubCategory{
				{NameAr: "كراسي متحركة", NameEn: "Wheelchairs", Href: "/products?category=Medical Equipment&sub=Wheelchairs"},
				{NameAr: "عكازات", NameEn: "Crutches", Href: "/products?category=Medical Equipment&sub=Crutches"},
			},
		},
	}
}
