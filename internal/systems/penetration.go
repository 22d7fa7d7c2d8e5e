package systems

import "github.com/Astreocclu/arc-citadel-sub002/internal/domain"

// --- РЕЖУЩАЯ ОСЬ ---
//
// Полная матрица Edge x Rigidity. Чистая, тотальная, детерминированная
// функция: для любой пары значений (включая незнакомые из будущего
// контента) возвращается определенный результат, паники исключены.
//
//	            None      Soft      Rigid    Plate
//	  Blunt     no_att    no_att    no_att   no_att
//	  Dull      cut       graze     deflect  deflect
//	  Sharp     deep_cut  cut       graze    deflect
//	  Razor     deep_cut  deep_cut  graze    deflect
//
// Бритва берет плоть и ткань лучше меча, но хуже всех держится против
// жестких оболочек - поэтому кинжал остается оружием борьбы в захвате.

// ResolvePenetration разрешает режущую ось удара.
// armorPiercing - флаг специальной пометки оружия: граненое острие
// считает жесткость брони на класс ниже (Plate -> Rigid, Rigid -> Soft).
// Сам класс лезвия флаг никогда не повышает.
func ResolvePenetration(edge domain.Edge, rigidity domain.Rigidity, armorPiercing bool) domain.PenetrationResult {
	// Blunt не пытается резать в принципе, что бы ни было надето.
	if edge == domain.EdgeBlunt {
		return domain.PenetrationNoAttempt
	}

	if armorPiercing {
		switch rigidity {
		case domain.RigidityPlate:
			rigidity = domain.RigidityRigid
		case domain.RigidityRigid:
			rigidity = domain.RigiditySoft
		}
	}

	switch edge {
	case domain.EdgeDull:
		switch rigidity {
		case domain.RigidityNone:
			return domain.PenetrationCut
		case domain.RigiditySoft:
			return domain.PenetrationGraze
		case domain.RigidityRigid, domain.RigidityPlate:
			return domain.PenetrationDeflect
		}
	case domain.EdgeSharp:
		switch rigidity {
		case domain.RigidityNone:
			return domain.PenetrationDeepCut
		case domain.RigiditySoft:
			return domain.PenetrationCut
		case domain.RigidityRigid:
			return domain.PenetrationGraze
		case domain.RigidityPlate:
			return domain.PenetrationDeflect
		}
	case domain.EdgeRazor:
		switch rigidity {
		case domain.RigidityNone, domain.RigiditySoft:
			return domain.PenetrationDeepCut
		case domain.RigidityRigid:
			return domain.PenetrationGraze
		case domain.RigidityPlate:
			return domain.PenetrationDeflect
		}
	}

	// Незнакомое лезвие или незнакомая броня: берем ближайший исход
	// меньшей способности. Новый контент не должен ронять бой.
	return domain.PenetrationDeflect
}
