package consultation

import "github.com/clinicscribe-team/clinic-scribe/internal/domain/entities"

// DefaultCatalog returns the built-in treatment protocol catalog. The catalog
// is loaded once at startup and read-only for the lifetime of the process.
func DefaultCatalog() []entities.MedicalProtocol {
	return []entities.MedicalProtocol{
		{
			ID:        "proto-i10",
			Name:      "tăng huyết áp",
			ICD10:     "I10",
			Authority: "Bộ Y tế - Hướng dẫn chẩn đoán và điều trị tăng huyết áp (QĐ 3192/QĐ-BYT)",
			SubjectiveKeys: []string{
				"tăng huyết áp", "cao huyết áp", "huyết áp cao",
			},
			PlanGuidelines: "Thay đổi lối sống: giảm muối dưới 5g/ngày, hạn chế rượu bia, tập thể dục 30 phút/ngày. Khởi trị thuốc hạ áp (ưu tiên ức chế men chuyển hoặc chẹn kênh canxi) khi huyết áp >= 140/90 mmHg. Tái khám sau 2-4 tuần để chỉnh liều, theo dõi huyết áp tại nhà.",
		},
		{
			ID:        "proto-j02",
			Name:      "viêm họng",
			ICD10:     "J02.9",
			Authority: "Bộ Y tế - Hướng dẫn chẩn đoán và điều trị một số bệnh về tai mũi họng",
			SubjectiveKeys: []string{
				"đau họng", "rát họng", "viêm họng", "nuốt đau",
			},
			PlanGuidelines: "Súc họng nước muối sinh lý, nghỉ ngơi, uống đủ nước. Hạ sốt giảm đau bằng paracetamol khi cần. Chỉ dùng kháng sinh (amoxicillin 7-10 ngày) khi nghi liên cầu khuẩn nhóm A. Tái khám nếu sốt kéo dài quá 3 ngày hoặc khó nuốt tăng.",
		},
		{
			ID:        "proto-e11",
			Name:      "đái tháo đường",
			ICD10:     "E11",
			Authority: "Bộ Y tế - Hướng dẫn chẩn đoán và điều trị đái tháo đường típ 2 (QĐ 5481/QĐ-BYT)",
			SubjectiveKeys: []string{
				"đái tháo đường", "tiểu đường", "đường huyết cao",
			},
			PlanGuidelines: "Điều chỉnh chế độ ăn giảm tinh bột nhanh, vận động tối thiểu 150 phút/tuần. Khởi trị metformin nếu không có chống chỉ định, mục tiêu HbA1c dưới 7%. Xét nghiệm đường huyết đói và HbA1c mỗi 3 tháng, tầm soát biến chứng thận, mắt, bàn chân hằng năm.",
		},
		{
			ID:        "proto-a09",
			Name:      "tiêu chảy",
			ICD10:     "A09",
			Authority: "Bộ Y tế - Hướng dẫn xử trí tiêu chảy cấp",
			SubjectiveKeys: []string{
				"tiêu chảy", "đi ngoài phân lỏng", "mất nước",
			},
			PlanGuidelines: "Bù nước và điện giải bằng oresol theo mức độ mất nước, bổ sung kẽm 10-14 ngày. Không dùng kháng sinh thường quy, chỉ định khi phân có máu hoặc nghi tả. Khám lại ngay nếu nôn nhiều, li bì hoặc không uống được.",
		},
		{
			ID:        "proto-j45",
			Name:      "hen phế quản",
			ICD10:     "J45",
			Authority: "Bộ Y tế - Hướng dẫn chẩn đoán và điều trị hen phế quản người lớn (QĐ 1851/QĐ-BYT)",
			SubjectiveKeys: []string{
				"hen", "khó thở", "khò khè", "hen suyễn",
			},
			PlanGuidelines: "Kiểm soát nền bằng corticosteroid dạng hít liều thấp, thuốc cắt cơn SABA khi có triệu chứng. Đánh giá kỹ thuật dùng bình hít và mức độ kiểm soát mỗi lần tái khám. Tránh yếu tố khởi phát, tiêm phòng cúm hằng năm.",
		},
		{
			ID:        "proto-k29",
			Name:      "viêm dạ dày",
			ICD10:     "K29.7",
			Authority: "Bộ Y tế - Hướng dẫn chẩn đoán và điều trị bệnh lý dạ dày tá tràng",
			SubjectiveKeys: []string{
				"đau thượng vị", "viêm dạ dày", "ợ chua", "ợ hơi",
			},
			PlanGuidelines: "Ức chế bơm proton 4-8 tuần, ăn uống đúng giờ, tránh rượu bia và thuốc kháng viêm không steroid. Xét nghiệm H. pylori và điều trị tiệt trừ nếu dương tính. Nội soi kiểm tra nếu triệu chứng kéo dài hoặc có dấu hiệu báo động.",
		},
	}
}
