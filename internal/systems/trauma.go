package systems

import "github.com/Astreocclu/arc-citadel-sub002/internal/domain"

// --- ДРОБЯЩАЯ ОСЬ ---
//
// Полная матрица Mass x Padding:
//
//	            None     Light       Heavy
//	  Light     fatigue  negligible  negligible
//	  Medium    stun     fatigue     negligible
//	  Heavy     injury   stun        fatigue
//
// Равный подбой съедает удар до усталости, перевес массы на один класс
// дает оглушение, на два - травму. Градация способностей, не множитель.

// ResolveTrauma разрешает дробящую ось удара. Тотальная и чистая.
func ResolveTrauma(mass domain.Mass, padding domain.Padding) domain.TraumaResult {
	switch mass {
	case domain.MassLight:
		switch padding {
		case domain.PaddingNone:
			return domain.TraumaFatigue
		case domain.PaddingLight, domain.PaddingHeavy:
			return domain.TraumaNegligible
		}
	case domain.MassMedium:
		switch padding {
		case domain.PaddingNone:
			return domain.TraumaStun
		case domain.PaddingLight:
			return domain.TraumaFatigue
		case domain.PaddingHeavy:
			return domain.TraumaNegligible
		}
	case domain.MassHeavy:
		switch padding {
		case domain.PaddingNone:
			return domain.TraumaInjury
		case domain.PaddingLight:
			return domain.TraumaStun
		case domain.PaddingHeavy:
			return domain.TraumaFatigue
		}
	}

	// Незнакомая масса или подбой: ближайший исход меньшей способности.
	return domain.TraumaNegligible
}
