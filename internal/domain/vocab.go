package domain

// Controlled vocabularies. Each type has a canonical label set consumed by
// the enumeration resolver; "Other" is the placeholder for unmatched terms.

type Immersion string

const (
	ImmersionOil          Immersion = "Oil"
	ImmersionWater        Immersion = "Water"
	ImmersionWaterDipping Immersion = "WaterDipping"
	ImmersionAir          Immersion = "Air"
	ImmersionMulti        Immersion = "Multi"
	ImmersionGlycerol     Immersion = "Glycerol"
	ImmersionOther        Immersion = "Other"
)

type Correction string

const (
	CorrectionUV              Correction = "UV"
	CorrectionPlanApo         Correction = "PlanApo"
	CorrectionPlanFluor       Correction = "PlanFluor"
	CorrectionSuperFluor      Correction = "SuperFluor"
	CorrectionVioletCorrected Correction = "VioletCorrected"
	CorrectionAchro           Correction = "Achro"
	CorrectionAchromat        Correction = "Achromat"
	CorrectionFluor           Correction = "Fluor"
	CorrectionFluar           Correction = "Fluar"
	CorrectionNeofluar        Correction = "Neofluar"
	CorrectionFluotar         Correction = "Fluotar"
	CorrectionApo             Correction = "Apo"
	CorrectionStrictApo       Correction = "StrictApo"
	CorrectionOther           Correction = "Other"
)

type DetectorType string

const (
	DetectorCCD             DetectorType = "CCD"
	DetectorIntensifiedCCD  DetectorType = "IntensifiedCCD"
	DetectorAnalogVideo     DetectorType = "AnalogVideo"
	DetectorPMT             DetectorType = "PMT"
	DetectorPhotodiode      DetectorType = "Photodiode"
	DetectorSpectroscopy    DetectorType = "Spectroscopy"
	DetectorLifetimeImaging DetectorType = "LifetimeImaging"
	DetectorCorrelationSpec DetectorType = "CorrelationSpectroscopy"
	DetectorFTIR            DetectorType = "FTIR"
	DetectorEMCCD           DetectorType = "EMCCD"
	DetectorAPD             DetectorType = "APD"
	DetectorCMOS            DetectorType = "CMOS"
	DetectorEBCCD           DetectorType = "EBCCD"
	DetectorOther           DetectorType = "Other"
)

type FilterType string

const (
	FilterDichroic       FilterType = "Dichroic"
	FilterLongPass       FilterType = "LongPass"
	FilterShortPass      FilterType = "ShortPass"
	FilterBandPass       FilterType = "BandPass"
	FilterMultiPass      FilterType = "MultiPass"
	FilterNeutralDensity FilterType = "NeutralDensity"
	FilterTuneable       FilterType = "Tuneable"
	FilterOther          FilterType = "Other"
)

type LaserType string

const (
	LaserExcimer       LaserType = "Excimer"
	LaserGas           LaserType = "Gas"
	LaserMetalVapor    LaserType = "MetalVapor"
	LaserSolidState    LaserType = "SolidState"
	LaserDye           LaserType = "Dye"
	LaserSemiconductor LaserType = "Semiconductor"
	LaserFreeElectron  LaserType = "FreeElectron"
	LaserOther         LaserType = "Other"
)

type LaserMedium string

const (
	MediumCu          LaserMedium = "Cu"
	MediumAg          LaserMedium = "Ag"
	MediumArFl        LaserMedium = "ArFl"
	MediumArCl        LaserMedium = "ArCl"
	MediumKrFl        LaserMedium = "KrFl"
	MediumKrCl        LaserMedium = "KrCl"
	MediumXeFl        LaserMedium = "XeFl"
	MediumXeCl        LaserMedium = "XeCl"
	MediumXeBr        LaserMedium = "XeBr"
	MediumN           LaserMedium = "N"
	MediumAr          LaserMedium = "Ar"
	MediumKr          LaserMedium = "Kr"
	MediumXe          LaserMedium = "Xe"
	MediumHeNe        LaserMedium = "HeNe"
	MediumHeCd        LaserMedium = "HeCd"
	MediumCO          LaserMedium = "CO"
	MediumCO2         LaserMedium = "CO2"
	MediumH2O         LaserMedium = "H2O"
	MediumHFl         LaserMedium = "HFl"
	MediumNdGlass     LaserMedium = "NdGlass"
	MediumNdYAG       LaserMedium = "NdYAG"
	MediumErGlass     LaserMedium = "ErGlass"
	MediumErYAG       LaserMedium = "ErYAG"
	MediumHoYLF       LaserMedium = "HoYLF"
	MediumHoYAG       LaserMedium = "HoYAG"
	MediumRuby        LaserMedium = "Ruby"
	MediumTiSapphire  LaserMedium = "TiSapphire"
	MediumAlexandrite LaserMedium = "Alexandrite"
	MediumRhodamine6G LaserMedium = "Rhodamine6G"
	MediumCoumarinC30 LaserMedium = "CoumarinC30"
	MediumGaAs        LaserMedium = "GaAs"
	MediumGaAlAs      LaserMedium = "GaAlAs"
	MediumEMinus      LaserMedium = "EMinus"
	MediumOther       LaserMedium = "Other"
)

type ArcType string

const (
	ArcHg    ArcType = "Hg"
	ArcXe    ArcType = "Xe"
	ArcHgXe  ArcType = "HgXe"
	ArcOther ArcType = "Other"
)

type FilamentType string

const (
	FilamentIncandescent FilamentType = "Incandescent"
	FilamentHalogen      FilamentType = "Halogen"
	FilamentOther        FilamentType = "Other"
)

type IlluminationType string

const (
	IlluminationTransmitted     IlluminationType = "Transmitted"
	IlluminationEpifluorescence IlluminationType = "Epifluorescence"
	IlluminationOblique         IlluminationType = "Oblique"
	IlluminationNonLinear       IlluminationType = "NonLinear"
	IlluminationOther           IlluminationType = "Other"
)

type ContrastMethod string

const (
	ContrastBrightfield         ContrastMethod = "Brightfield"
	ContrastPhase               ContrastMethod = "Phase"
	ContrastDIC                 ContrastMethod = "DIC"
	ContrastHoffmanModulation   ContrastMethod = "HoffmanModulation"
	ContrastObliqueIllumination ContrastMethod = "ObliqueIllumination"
	ContrastPolarizedLight      ContrastMethod = "PolarizedLight"
	ContrastDarkfield           ContrastMethod = "Darkfield"
	ContrastFluorescence        ContrastMethod = "Fluorescence"
	ContrastOther               ContrastMethod = "Other"
)

type AcquisitionMode string

const (
	AcquisitionWideField             AcquisitionMode = "WideField"
	AcquisitionLaserScanningConfocal AcquisitionMode = "LaserScanningConfocalMicroscopy"
	AcquisitionSpinningDiskConfocal  AcquisitionMode = "SpinningDiskConfocal"
	AcquisitionTIRF                  AcquisitionMode = "TotalInternalReflection"
	AcquisitionMultiPhoton           AcquisitionMode = "MultiPhotonMicroscopy"
	AcquisitionSPIM                  AcquisitionMode = "SPIM"
	AcquisitionBrightField           AcquisitionMode = "BrightField"
	AcquisitionOther                 AcquisitionMode = "Other"
)

type NamingConvention string

const (
	NamingLetter NamingConvention = "letter"
	NamingNumber NamingConvention = "number"
	NamingOther  NamingConvention = "other"
)

func canonical[V ~string](values ...V) map[string]V {
	m := make(map[string]V, len(values))
	for _, v := range values {
		m[string(v)] = v
	}
	return m
}

// Canonical label sets, keyed by label.
var Immersions = canonical(ImmersionOil, ImmersionWater, ImmersionWaterDipping,
	ImmersionAir, ImmersionMulti, ImmersionGlycerol, ImmersionOther)

var Corrections = canonical(CorrectionUV, CorrectionPlanApo, CorrectionPlanFluor,
	CorrectionSuperFluor, CorrectionVioletCorrected, CorrectionAchro,
	CorrectionAchromat, CorrectionFluor, CorrectionFluar, CorrectionNeofluar,
	CorrectionFluotar, CorrectionApo, CorrectionStrictApo, CorrectionOther)

var DetectorTypes = canonical(DetectorCCD, DetectorIntensifiedCCD, DetectorAnalogVideo,
	DetectorPMT, DetectorPhotodiode, DetectorSpectroscopy, DetectorLifetimeImaging,
	DetectorCorrelationSpec, DetectorFTIR, DetectorEMCCD, DetectorAPD,
	DetectorCMOS, DetectorEBCCD, DetectorOther)

var FilterTypes = canonical(FilterDichroic, FilterLongPass, FilterShortPass,
	FilterBandPass, FilterMultiPass, FilterNeutralDensity, FilterTuneable, FilterOther)

var LaserTypes = canonical(LaserExcimer, LaserGas, LaserMetalVapor, LaserSolidState,
	LaserDye, LaserSemiconductor, LaserFreeElectron, LaserOther)

var LaserMedia = canonical(MediumCu, MediumAg, MediumArFl, MediumArCl, MediumKrFl,
	MediumKrCl, MediumXeFl, MediumXeCl, MediumXeBr, MediumN, MediumAr, MediumKr,
	MediumXe, MediumHeNe, MediumHeCd, MediumCO, MediumCO2, MediumH2O, MediumHFl,
	MediumNdGlass, MediumNdYAG, MediumErGlass, MediumErYAG, MediumHoYLF,
	MediumHoYAG, MediumRuby, MediumTiSapphire, MediumAlexandrite,
	MediumRhodamine6G, MediumCoumarinC30, MediumGaAs, MediumGaAlAs,
	MediumEMinus, MediumOther)

var ArcTypes = canonical(ArcHg, ArcXe, ArcHgXe, ArcOther)

var FilamentTypes = canonical(FilamentIncandescent, FilamentHalogen, FilamentOther)

var IlluminationTypes = canonical(IlluminationTransmitted, IlluminationEpifluorescence,
	IlluminationOblique, IlluminationNonLinear, IlluminationOther)

var ContrastMethods = canonical(ContrastBrightfield, ContrastPhase, ContrastDIC,
	ContrastHoffmanModulation, ContrastObliqueIllumination, ContrastPolarizedLight,
	ContrastDarkfield, ContrastFluorescence, ContrastOther)

var AcquisitionModes = canonical(AcquisitionWideField, AcquisitionLaserScanningConfocal,
	AcquisitionSpinningDiskConfocal, AcquisitionTIRF, AcquisitionMultiPhoton,
	AcquisitionSPIM, AcquisitionBrightField, AcquisitionOther)

var NamingConventions = canonical(NamingLetter, NamingNumber, NamingOther)
