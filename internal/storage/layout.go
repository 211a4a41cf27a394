package storage

// MediaLayout describes how an anomaly set's images are stored
type MediaLayout struct {
	Bucket string
	// Folder overrides the set name as the key prefix; "-" means no prefix
	Folder string
	Ext    string
	// Frames > 0 means a {id}/{n}.png sequence instead of a single {id}.{ext}
	Frames int
}

func (l MediaLayout) prefix(set string) string {
	switch l.Folder {
	case "":
		return set
	case "-":
		return ""
	default:
		return l.Folder
	}
}

var defaultLayout = MediaLayout{Bucket: BucketTelescope, Ext: "png"}

var layouts = map[string]MediaLayout{
	"telescope-sunspots":           {Bucket: BucketTelescope, Ext: "png"},
	"telescope-active-asteroids":   {Bucket: BucketTelescope, Ext: "png"},
	"telescope-superwasp-variable": {Bucket: BucketTelescope, Ext: "gif"},
	"telescope-dailyMinorPlanet":   {Bucket: BucketTelescope, Frames: 4},
	"telescope-diskDetective":      {Bucket: BucketTelescope, Frames: 10},
	"satellite-planetFour":         {Bucket: BucketTelescope, Ext: "jpeg"},
	"lidar-jovianVortexHunter":     {Bucket: BucketTelescope, Ext: "png"},
	"automaton-aiForMars":          {Bucket: BucketTelescope, Ext: "jpeg"},
	"cloudspottingOnMars":          {Bucket: BucketClouds, Folder: "-", Ext: "png"},
}

// LayoutFor returns the storage layout for a set; unknown sets are single png images in the telescope bucket
func LayoutFor(anomalySet string) MediaLayout {
	if l, ok := layouts[anomalySet]; ok {
		return l
	}
	return defaultLayout
}
