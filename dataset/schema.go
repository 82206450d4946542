package dataset

// LabelColumn はターゲットラベル列の名前
const LabelColumn = "label"

// NumColumns はHIGGSデータセットの列数（ラベル1 + 特徴量28）
const NumColumns = 29

// lowLevelFeatures は検出器で直接測定される21個の低レベル特徴量
// （UCI Machine Learning Repositoryの記述に基づく）
var lowLevelFeatures = []string{
	"lepton_pT", "lepton_eta", "lepton_phi",
	"missing_energy_magnitude", "missing_energy_phi",
	"jet1_pt", "jet1_eta", "jet1_phi", "jet1_b-tag",
	"jet2_pt", "jet2_eta", "jet2_phi", "jet2_b-tag",
	"jet3_pt", "jet3_eta", "jet3_phi", "jet3_b-tag",
	"jet4_pt", "jet4_eta", "jet4_phi", "jet4_b-tag",
}

// highLevelFeatures は物理学者が導出した7個の高レベル特徴量
var highLevelFeatures = []string{
	"m_jj", "m_jjj", "m_lv", "m_jlv", "m_bb", "m_wbb", "m_wwbb",
}

// ColumnNames はデータセットの29列の名前を順番通りに返す
// （1列目はラベル、続いて21個の低レベル特徴量、7個の高レベル特徴量）
func ColumnNames() []string {
	names := make([]string, 0, NumColumns)
	names = append(names, LabelColumn)
	names = append(names, lowLevelFeatures...)
	names = append(names, highLevelFeatures...)
	return names
}

// FeatureNames はラベルを除く28個の特徴量列の名前を返す
func FeatureNames() []string {
	return ColumnNames()[1:]
}

// DefaultPlotFeatures は可視化ステップで既定として使用する特徴量
func DefaultPlotFeatures() []string {
	return []string{
		"lepton_pT", "lepton_eta", "missing_energy_magnitude",
		"jet1_pt", "jet1_b-tag", "m_jj", "m_wwbb",
	}
}
