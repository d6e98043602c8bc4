package models

import (
	"cbrarecords/internal/apperr"
)

// AllowedCategories lists the categories a class may pick. Classes 1-7 have
// none.
func AllowedCategories(className int) []ClassCategory {
	switch {
	case className >= 8 && className <= 10:
		return []ClassCategory{CategoryComputerScience, CategoryBiology}
	case className == 11 || className == 12:
		return []ClassCategory{CategoryComputerScience, CategoryPreEngineering, CategoryPreMedical}
	default:
		return nil
	}
}

// ValidateCategory checks a category against the class tier.
func ValidateCategory(className int, category ClassCategory) error {
	allowed := AllowedCategories(className)
	if len(allowed) == 0 {
		if category != CategoryNone {
			return apperr.New(apperr.KindInvalidFormat, "class %d takes no category, got %q", className, category)
		}
		return nil
	}
	for _, c := range allowed {
		if c == category {
			return nil
		}
	}
	return apperr.New(apperr.KindInvalidFormat, "category %q is not offered in class %d", category, className)
}

// ParseCategory accepts any known category name, including none.
func ParseCategory(s string) (ClassCategory, error) {
	switch c := ClassCategory(s); c {
	case CategoryNone, CategoryComputerScience, CategoryBiology, CategoryPreEngineering, CategoryPreMedical:
		return c, nil
	}
	return "", apperr.New(apperr.KindInvalidFormat, "unknown category %q", s)
}

// SubjectsForClass returns the fixed subject set for classes 8-12. Classes
// 1-7 choose their own subjects, so nil is returned.
func SubjectsForClass(className int, category ClassCategory) []string {
	switch className {
	case 8, 9, 10:
		switch category {
		case CategoryComputerScience:
			return []string{"English", "Urdu", "Maths", "Physics", "Chemistry", "Islamiat", "Pak Studies", "Computer Science", "Mutaila Quran"}
		case CategoryBiology:
			return []string{"English", "Urdu", "Maths", "Physics", "Chemistry", "Islamiat", "Pak Studies", "Biology", "Mutaila Quran"}
		}
	case 11:
		switch category {
		case CategoryComputerScience:
			return []string{"English", "Urdu", "Maths", "Physics", "Islamiat", "Computer Science", "Mutaila Quran"}
		case CategoryPreEngineering:
			return []string{"English", "Urdu", "Maths", "Physics", "Chemistry", "Islamiat", "Mutaila Quran"}
		case CategoryPreMedical:
			return []string{"English", "Urdu", "Physics", "Biology", "Chemistry", "Islamiat", "Mutaila Quran"}
		}
	case 12:
		switch category {
		case CategoryComputerScience:
			return []string{"English", "Urdu", "Maths", "Physics", "Pak Studies", "Computer Science", "Mutaila Quran"}
		case CategoryPreEngineering:
			return []string{"English", "Urdu", "Maths", "Physics", "Chemistry", "Pak Studies", "Mutaila Quran"}
		case CategoryPreMedical:
			return []string{"English", "Urdu", "Physics", "Biology", "Chemistry", "Pak Studies", "Mutaila Quran"}
		}
	}
	return nil
}
